package v20

import (
	"encoding/xml"
	"fmt"

	"github.com/FocuswithJustin/XliffCapsule/core/xliff/state"
)

// State is the segment state attribute. The 2.0 wire vocabulary recognizes
// only four strings; of the ten shared enum values only New, Translated,
// NeedsReviewTranslation and Final are representable. Saving any other
// value is rejected rather than silently dropped, and reading an unknown
// string fails instead of defaulting to "initial".
type State state.TranslationState

var wireNames = map[state.TranslationState]string{
	state.New:                    "initial",
	state.Translated:             "translated",
	state.NeedsReviewTranslation: "reviewed",
	state.Final:                  "final",
}

var byWireName = map[string]state.TranslationState{
	"initial":    state.New,
	"translated": state.Translated,
	"reviewed":   state.NeedsReviewTranslation,
	"final":      state.Final,
}

// Representable reports whether ts survives a 2.0 serialization.
func Representable(ts state.TranslationState) bool {
	_, ok := wireNames[ts]
	return ok
}

// TranslationState converts to the shared enum.
func (s State) TranslationState() state.TranslationState {
	return state.TranslationState(s)
}

func (s State) String() string {
	return state.TranslationState(s).String()
}

// MarshalXMLAttr implements xml.MarshalerAttr. The default state produces
// no attribute; unrepresentable states are an error.
func (s State) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	ts := state.TranslationState(s)
	if ts == state.New {
		return xml.Attr{}, nil
	}
	wire, ok := wireNames[ts]
	if !ok {
		return xml.Attr{}, fmt.Errorf("xliff 2.0: state %q is not representable on the wire", ts)
	}
	return xml.Attr{Name: name, Value: wire}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (s *State) UnmarshalXMLAttr(attr xml.Attr) error {
	ts, ok := byWireName[attr.Value]
	if !ok {
		return fmt.Errorf("xliff 2.0: unknown segment state %q", attr.Value)
	}
	*s = State(ts)
	return nil
}

// YesNo is the unit approval flag, serialized as approved="yes" and
// omitted entirely when unapproved.
type YesNo bool

// MarshalXMLAttr implements xml.MarshalerAttr.
func (b YesNo) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if !b {
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: "yes"}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr.
func (b *YesNo) UnmarshalXMLAttr(attr xml.Attr) error {
	switch attr.Value {
	case "yes":
		*b = true
	case "no", "":
		*b = false
	default:
		return fmt.Errorf("xliff 2.0: invalid approved value %q", attr.Value)
	}
	return nil
}
