package v12

import (
	"encoding/xml"
	"fmt"

	"github.com/FocuswithJustin/XliffCapsule/core/xliff/state"
)

// State is the trans-unit state attribute. Generation A carries the full
// ten-value vocabulary losslessly; the zero value (new) is never written.
type State state.TranslationState

// TranslationState converts to the shared enum.
func (s State) TranslationState() state.TranslationState {
	return state.TranslationState(s)
}

func (s State) String() string {
	return state.TranslationState(s).String()
}

// MarshalXMLAttr implements xml.MarshalerAttr. The default state produces
// no attribute.
func (s State) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	ts := state.TranslationState(s)
	if ts == state.New {
		return xml.Attr{}, nil
	}
	if !ts.Valid() {
		return xml.Attr{}, fmt.Errorf("xliff 1.2: cannot serialize state %s", ts)
	}
	return xml.Attr{Name: name, Value: ts.String()}, nil
}

// UnmarshalXMLAttr implements xml.UnmarshalerAttr. Unknown state strings
// are rejected rather than silently coerced.
func (s *State) UnmarshalXMLAttr(attr xml.Attr) error {
	ts, err := state.Parse(attr.Value)
	if err != nil {
		return fmt.Errorf("xliff 1.2: %w", err)
	}
	*s = State(ts)
	return nil
}
