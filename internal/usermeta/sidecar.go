package usermeta

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photo-catalog/internal/logging"
	"photo-catalog/internal/metrics"
)

// sidecarDirName is the per-folder directory that holds XMP sidecars,
// keeping them out of the photo listing itself.
const sidecarDirName = ".xmp"

// SidecarStore persists user metadata as one XMP sidecar per photo,
// stored as <dir>/.xmp/<filename>.xmp next to the photo. The photo file
// itself is never touched.
type SidecarStore struct{}

// NewSidecarStore returns a sidecar-backed Store.
func NewSidecarStore() *SidecarStore {
	return &SidecarStore{}
}

// Get reads the sidecar for path. A missing or unparsable sidecar yields
// the zero value.
func (s *SidecarStore) Get(_ context.Context, path string) UserMetadata {
	done := observeMetadataOp("sidecar_get")

	data, err := os.ReadFile(sidecarPath(path))
	if err != nil {
		done(nil) // absent sidecar is the common case, not a failure
		return UserMetadata{}
	}

	meta, err := parseXMP(data)
	if err != nil {
		logging.Debug("ignoring unparsable sidecar for %s: %v", path, err)
		done(nil)
		return UserMetadata{}
	}

	done(nil)
	return meta
}

// Set writes the sidecar for path. Setting the zero value removes the
// sidecar instead, so "explicitly cleared" and "never edited" converge
// on the same on-disk state.
func (s *SidecarStore) Set(_ context.Context, path string, meta UserMetadata) error {
	done := observeMetadataOp("sidecar_set")

	sc := sidecarPath(path)

	if meta.IsZero() {
		err := os.Remove(sc)
		if err != nil && !os.IsNotExist(err) {
			done(err)
			return fmt.Errorf("failed to remove sidecar: %w", err)
		}
		done(nil)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(sc), 0o755); err != nil {
		done(err)
		return fmt.Errorf("failed to create sidecar directory: %w", err)
	}

	if err := os.WriteFile(sc, buildXMP(meta), 0o644); err != nil {
		done(err)
		return fmt.Errorf("failed to write sidecar: %w", err)
	}

	done(nil)
	return nil
}

// Close is a no-op; sidecars hold no open resources.
func (s *SidecarStore) Close() error { return nil }

// sidecarPath maps a photo path onto its sidecar location.
func sidecarPath(photoPath string) string {
	dir := filepath.Dir(photoPath)
	name := filepath.Base(photoPath)
	return filepath.Join(dir, sidecarDirName, name+".xmp")
}

// xmpDoc mirrors the minimal Dublin Core subset the catalog reads and
// writes: dc:title, dc:subject (tag bag) and dc:description.
type xmpDoc struct {
	XMLName xml.Name `xml:"xmpmeta"`
	Title   string   `xml:"RDF>Description>title>Alt>li"`
	Tags    []string `xml:"RDF>Description>subject>Bag>li"`
	Comment string   `xml:"RDF>Description>description>Alt>li"`
}

func parseXMP(data []byte) (UserMetadata, error) {
	var doc xmpDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return UserMetadata{}, err
	}

	tags := make([]string, 0, len(doc.Tags))
	for _, t := range doc.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}

	return UserMetadata{
		Title:   strings.TrimSpace(doc.Title),
		Tags:    tags,
		Comment: strings.TrimSpace(doc.Comment),
	}, nil
}

func buildXMP(meta UserMetadata) []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString("<x:xmpmeta xmlns:x=\"adobe:ns:meta/\">\n")
	b.WriteString("  <rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\" xmlns:dc=\"http://purl.org/dc/elements/1.1/\">\n")
	b.WriteString("    <rdf:Description>\n")
	b.WriteString("      <dc:title>\n        <rdf:Alt>\n          <rdf:li xml:lang=\"x-default\">")
	b.WriteString(escapeXML(meta.Title))
	b.WriteString("</rdf:li>\n        </rdf:Alt>\n      </dc:title>\n")
	b.WriteString("      <dc:subject>\n        <rdf:Bag>\n")
	for _, tag := range meta.Tags {
		b.WriteString("          <rdf:li>")
		b.WriteString(escapeXML(tag))
		b.WriteString("</rdf:li>\n")
	}
	b.WriteString("        </rdf:Bag>\n      </dc:subject>\n")
	b.WriteString("      <dc:description>\n        <rdf:Alt>\n          <rdf:li xml:lang=\"x-default\">")
	b.WriteString(escapeXML(meta.Comment))
	b.WriteString("</rdf:li>\n        </rdf:Alt>\n      </dc:description>\n")
	b.WriteString("    </rdf:Description>\n  </rdf:RDF>\n</x:xmpmeta>\n")
	return b.Bytes()
}

func escapeXML(s string) string {
	var b bytes.Buffer
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}

// observeMetadataOp records store operation metrics; the returned func
// is called with the operation's error (nil on success).
func observeMetadataOp(operation string) func(error) {
	start := time.Now()
	return func(err error) {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.MetadataQueryTotal.WithLabelValues(operation, status).Inc()
		metrics.MetadataQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
