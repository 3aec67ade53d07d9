package normalize

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"lowercase passthrough", "canon", "canon"},
		{"uppercase folds", "CANON", "canon"},
		{"fullwidth latin narrows", "Ｃａｎｏｎ", "canon"},
		{"fullwidth digits narrow", "１２３", "123"},
		{"katakana to hiragana", "カメラ", "かめら camera"},
		{"lens expands to canonical", "レンズ", "れんず lens"},
		{"english synonym keeps token", "lens", "lens"},
		{"multiple words", "Canon レンズ", "canon れんず lens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "canon", "レンズ", "Ｃａｎｏｎ ＥＯＳ", "カメラ レンズ 絞り",
		"50mm f/1.8", "ソフトウェア",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeLensContainsCanonical(t *testing.T) {
	got := Normalize("レンズ")
	if !strings.Contains(" "+got+" ", " lens ") {
		t.Errorf("Normalize(レンズ) = %q, want canonical token \"lens\"", got)
	}
}

func TestNormalizeKeywords(t *testing.T) {
	got := NormalizeKeywords([]string{"Canon", "", "  ", "レンズ"})
	want := []string{"canon", "れんず lens"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeKeywords = %v, want %v", got, want)
	}
}
