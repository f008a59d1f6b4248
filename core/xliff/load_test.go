package xliff

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/state"
)

func TestLoad_V12(t *testing.T) {
	doc, err := Load([]byte(sampleV12))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Generation != Generation12 {
		t.Fatalf("generation = %v, want %v", doc.Generation, Generation12)
	}
	if doc.V12 == nil || doc.V20 != nil {
		t.Fatal("exactly V12 must be populated")
	}

	f := doc.V12.Files[0]
	if f.SourceLanguage != "en" || f.TargetLanguage != "de" {
		t.Errorf("languages = %q/%q, want en/de", f.SourceLanguage, f.TargetLanguage)
	}
	if len(f.Body.Units) != 2 {
		t.Fatalf("got %d units, want 2", len(f.Body.Units))
	}

	u := f.Body.Units[0]
	if state.TranslationState(u.State) != state.Translated {
		t.Errorf("state = %v, want translated", u.State)
	}
	if target, ok := u.TargetText(); !ok || target != "Hallo" {
		t.Errorf("target = %q (%v), want Hallo", target, ok)
	}

	// The second unit carries no state and no target.
	u = f.Body.Units[1]
	if state.TranslationState(u.State) != state.New {
		t.Errorf("omitted state = %v, want new", u.State)
	}
	if u.Target != nil {
		t.Error("absent target must stay nil")
	}
}

func TestLoad_V20(t *testing.T) {
	doc, err := Load([]byte(sampleV20))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Generation != Generation20 {
		t.Fatalf("generation = %v, want %v", doc.Generation, Generation20)
	}
	if doc.V20 == nil || doc.V12 != nil {
		t.Fatal("exactly V20 must be populated")
	}

	if doc.V20.SrcLang != "en" || doc.V20.TrgLang != "fr" {
		t.Errorf("languages = %q/%q, want en/fr", doc.V20.SrcLang, doc.V20.TrgLang)
	}
	seg := doc.V20.Files[0].Units[0].Segments[0]
	if target, ok := seg.TargetText(); !ok || target != "Bonjour" {
		t.Errorf("target = %q (%v), want Bonjour", target, ok)
	}
}

func TestLoad_UndetectableInput(t *testing.T) {
	_, err := Load([]byte(`<resources version="1.2"/>`))
	if !errors.Is(err, errors.ErrFormat) {
		t.Errorf("error = %v, want ErrFormat", err)
	}
}

func TestLoadV12_RejectsWrongGeneration(t *testing.T) {
	// The 1.2 loader is namespace-strict; a 2.0 document must not decode.
	_, err := LoadV12([]byte(sampleV20))
	if err == nil {
		t.Fatal("expected error loading a 2.0 document as 1.2")
	}
	var fe *errors.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *errors.FormatError", err)
	}
	if fe.Format != "XLIFF 1.2" {
		t.Errorf("format = %q, want XLIFF 1.2", fe.Format)
	}
}

func TestLoadV20_RejectsWrongGeneration(t *testing.T) {
	_, err := LoadV20([]byte(sampleV12))
	if err == nil {
		t.Fatal("expected error loading a 1.2 document as 2.0")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xlf")
	if err := os.WriteFile(path, []byte(sampleV12), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if doc.Generation != Generation12 {
		t.Errorf("generation = %v, want %v", doc.Generation, Generation12)
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.xlf"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLoadFile_Gzip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(sampleV20)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "doc.xlf.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if doc.Generation != Generation20 {
		t.Errorf("generation = %v, want %v", doc.Generation, Generation20)
	}
}
