package normalize

// synonymTable maps a canonical English tag to its Japanese/English
// spelling variants. It covers the camera, exposure, GPS, software and
// file-attribute vocabulary a photo catalog is searched with. Static
// data; never mutated after init.
var synonymTable = map[string][]string{
	// camera
	"camera": {"カメラ", "かめら"},
	"lens":   {"レンズ", "れんず"},
	"make":   {"メーカー", "めーかー", "製造元", "せいぞうもと"},
	"model":  {"モデル", "もでる", "機種", "きしゅ"},

	// exposure settings
	"iso":      {"感度", "かんど", "アイエスオー"},
	"aperture": {"絞り", "しぼり", "F値", "Fち", "えふち"},
	"shutter":  {"シャッター", "しゃったー", "速度", "そくど"},
	"exposure": {"露出", "ろしゅつ", "露光", "ろこう"},
	"focal":    {"焦点", "しょうてん"},
	"focus":    {"フォーカス", "ふぉーかす", "ピント", "ぴんと"},

	// GPS and location
	"gps":       {"ジーピーエス", "位置", "いち", "座標", "ざひょう"},
	"latitude":  {"緯度", "いど"},
	"longitude": {"経度", "けいど"},

	// software
	"software": {"ソフトウェア", "そふとうぇあ", "ソフト", "そふと", "アプリ", "あぷり"},

	// image attributes
	"width":      {"幅", "はば", "横", "よこ"},
	"height":     {"高さ", "たかさ", "縦", "たて"},
	"size":       {"サイズ", "さいず", "容量", "ようりょう"},
	"resolution": {"解像度", "かいぞうど"},

	// general
	"file":  {"ファイル", "ふぁいる"},
	"name":  {"名前", "なまえ", "ネーム", "ねーむ"},
	"date":  {"日付", "ひづけ", "日時", "にちじ"},
	"time":  {"時刻", "じこく", "時間", "じかん"},
	"photo": {"写真", "しゃしん", "画像", "がぞう"},
	"image": {"画像", "がぞう", "イメージ", "いめーじ"},
}

// reverseSynonyms maps a normalized variant to its canonical tag. Keys
// are stored in post-normalization form (hiragana, half-width, lower
// case) so lookups during expansion hit regardless of the input script.
var reverseSynonyms = buildReverseSynonyms()

func buildReverseSynonyms() map[string]string {
	rev := make(map[string]string)
	for canonical, variants := range synonymTable {
		for _, v := range variants {
			key := canonicalForm(v)
			if _, exists := rev[key]; !exists {
				rev[key] = canonical
			}
		}
	}
	return rev
}
