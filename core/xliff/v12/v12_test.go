package v12

import (
	"encoding/xml"
	"reflect"
	"strings"
	"testing"

	"github.com/FocuswithJustin/XliffCapsule/core/xliff/state"
)

func sampleDoc() *Xliff {
	return New(File{
		Original:       "ui/strings.json",
		SourceLanguage: "en-US",
		TargetLanguage: "de-DE",
		Datatype:       "plaintext",
		Header: &Header{
			Tool:  &Tool{ID: "xliffcap", Name: "XliffCapsule"},
			Notes: []Note{{Text: "machine generated"}},
		},
		Body: Body{
			Units: []TransUnit{
				{ID: "greeting", Resname: "Greeting", Source: "Hello", Target: &Target{Text: "Hallo"}, State: State(state.Translated)},
				{ID: "farewell", Source: "Goodbye"},
			},
			Groups: []Group{
				{
					ID:    "menu",
					Units: []TransUnit{{ID: "menu.file", Source: "File"}},
					Groups: []Group{
						{ID: "menu.edit", Units: []TransUnit{{ID: "menu.edit.undo", Source: "Undo", State: State(state.SignedOff)}}},
					},
				},
			},
		},
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := sampleDoc()

	data, err := xml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got Xliff
	if err := xml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// The root XMLName is populated by the decoder; clear it so the
	// comparison covers the modeled fields only.
	got.XMLName = xml.Name{}
	if !reflect.DeepEqual(&got, doc) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", &got, doc)
	}
}

func TestMarshalWireShape(t *testing.T) {
	data, err := xml.Marshal(sampleDoc())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `xmlns="urn:oasis:names:tc:xliff:document:1.2"`) {
		t.Error("missing fixed namespace declaration")
	}
	if !strings.Contains(out, `version="1.2"`) {
		t.Error("missing version attribute")
	}
	if !strings.Contains(out, `state="translated"`) {
		t.Error("non-default state should be written")
	}
	if !strings.Contains(out, `state="signed-off"`) {
		t.Error("nested group state should be written")
	}
	if strings.Contains(out, `state="new"`) {
		t.Error("default state must be omitted, not written explicitly")
	}
	if !strings.Contains(out, "<source>Goodbye</source>") {
		t.Error("source must always be present")
	}
}

func TestDefaultStateOmission(t *testing.T) {
	doc := New(File{
		Original:       "a",
		SourceLanguage: "en",
		Datatype:       "plaintext",
		Body:           Body{Units: []TransUnit{{ID: "u1", Source: "x"}}},
	})
	data, err := xml.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "state=") {
		t.Errorf("default state leaked into output: %s", data)
	}

	var got Xliff
	if err := xml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Files[0].Body.Units[0].State != State(state.New) {
		t.Error("absent state attribute must decode to New")
	}
}

func TestFullVocabularyRoundTrip(t *testing.T) {
	all := []state.TranslationState{
		state.NeedsTranslation, state.NeedsReviewTranslation, state.Translated,
		state.Final, state.NeedsAdaptation, state.NeedsL10n,
		state.NeedsReviewAdaptation, state.NeedsL10nReview, state.SignedOff,
	}
	for _, ts := range all {
		t.Run(ts.String(), func(t *testing.T) {
			unit := TransUnit{ID: "u", Source: "s", State: State(ts)}
			data, err := xml.Marshal(unit)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if !strings.Contains(string(data), `state="`+ts.String()+`"`) {
				t.Errorf("state %s not written: %s", ts, data)
			}
			var got TransUnit
			if err := xml.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if got.State.TranslationState() != ts {
				t.Errorf("state = %v, want %v", got.State.TranslationState(), ts)
			}
		})
	}
}

func TestUnknownStateRejected(t *testing.T) {
	input := `<trans-unit id="u" state="in-progress"><source>s</source></trans-unit>`
	var got TransUnit
	if err := xml.Unmarshal([]byte(input), &got); err == nil {
		t.Error("expected error for unknown state string")
	}
}

func TestTargetAbsentVsEmpty(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		unit := TransUnit{ID: "u", Source: "s"}
		data, _ := xml.Marshal(unit)
		if strings.Contains(string(data), "<target") {
			t.Errorf("absent target must not be emitted: %s", data)
		}
	})

	t.Run("empty", func(t *testing.T) {
		unit := TransUnit{ID: "u", Source: "s", Target: &Target{}}
		data, _ := xml.Marshal(unit)
		if !strings.Contains(string(data), "<target></target>") {
			t.Errorf("empty target must be emitted: %s", data)
		}
		var got TransUnit
		if err := xml.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if got.Target == nil {
			t.Error("empty target must decode as present")
		}
	})
}

func TestResourceKey(t *testing.T) {
	u := &TransUnit{ID: "id1"}
	if u.ResourceKey() != "id1" {
		t.Errorf("ResourceKey() = %q, want id1", u.ResourceKey())
	}
	u.Resname = "Name1"
	if u.ResourceKey() != "Name1" {
		t.Errorf("ResourceKey() = %q, want Name1", u.ResourceKey())
	}
}

func TestTargetText(t *testing.T) {
	u := &TransUnit{ID: "u", Source: "s"}
	if _, ok := u.TargetText(); ok {
		t.Error("absent target should report ok=false")
	}
	u.Target = &Target{Text: "Hallo"}
	if text, ok := u.TargetText(); !ok || text != "Hallo" {
		t.Errorf("TargetText() = %q, %v", text, ok)
	}
}
