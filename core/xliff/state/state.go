// Package state defines the translation workflow state shared by both
// XLIFF generations. The enum carries the full 1.2 vocabulary; each
// generation package supplies its own wire codec because the two
// generations' on-wire vocabularies differ.
package state

import "fmt"

// TranslationState is the workflow status of a unit or segment.
// The zero value is New, which is never written as an explicit attribute.
type TranslationState int

const (
	// New indicates the item has not entered translation yet.
	New TranslationState = iota
	// NeedsTranslation indicates the item is queued for translation.
	NeedsTranslation
	// NeedsReviewTranslation indicates the translation awaits review.
	NeedsReviewTranslation
	// Translated indicates the item has been translated.
	Translated
	// Final indicates the item has reached its final form.
	Final
	// NeedsAdaptation indicates non-textual adaptation is required.
	NeedsAdaptation
	// NeedsL10n indicates localization beyond translation is required.
	NeedsL10n
	// NeedsReviewAdaptation indicates adaptation awaits review.
	NeedsReviewAdaptation
	// NeedsL10nReview indicates localization awaits review.
	NeedsL10nReview
	// SignedOff indicates the item has been signed off.
	SignedOff
)

var names = map[TranslationState]string{
	New:                    "new",
	NeedsTranslation:       "needs-translation",
	NeedsReviewTranslation: "needs-review-translation",
	Translated:             "translated",
	Final:                  "final",
	NeedsAdaptation:        "needs-adaptation",
	NeedsL10n:              "needs-l10n",
	NeedsReviewAdaptation:  "needs-review-adaptation",
	NeedsL10nReview:        "needs-l10n-review",
	SignedOff:              "signed-off",
}

var byName = func() map[string]TranslationState {
	m := make(map[string]TranslationState, len(names))
	for s, n := range names {
		m[n] = s
	}
	return m
}()

// String returns the canonical identifier, which matches the 1.2 wire form.
func (s TranslationState) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("TranslationState(%d)", int(s))
}

// Valid reports whether s is one of the defined states.
func (s TranslationState) Valid() bool {
	_, ok := names[s]
	return ok
}

// Parse resolves a canonical identifier to its TranslationState.
func Parse(name string) (TranslationState, error) {
	if s, ok := byName[name]; ok {
		return s, nil
	}
	return New, fmt.Errorf("unknown translation state %q", name)
}
