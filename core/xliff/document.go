// Package xliff provides version detection, loading and saving for the two
// XLIFF schema generations. The two generations share no structure, so a
// loaded document is a tagged union: callers branch on Generation rather
// than relying on a common interface.
package xliff

import (
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v12"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v20"
)

// Generation identifies which schema generation a document uses.
type Generation int

const (
	// GenerationUnknown is the zero value; no valid document has it.
	GenerationUnknown Generation = iota
	// Generation12 is the legacy flat trans-unit schema (version "1.2").
	Generation12
	// Generation20 is the segment-based schema (version "2.0").
	Generation20
)

func (g Generation) String() string {
	switch g {
	case Generation12:
		return "XLIFF 1.2"
	case Generation20:
		return "XLIFF 2.0"
	default:
		return "unknown"
	}
}

// Document is a loaded XLIFF document of either generation. Exactly one of
// V12 and V20 is non-nil, matching Generation.
type Document struct {
	Generation Generation
	V12        *v12.Xliff
	V20        *v20.Xliff
}

// NewV12 wraps a 1.2 tree in a Document.
func NewV12(x *v12.Xliff) *Document {
	return &Document{Generation: Generation12, V12: x}
}

// NewV20 wraps a 2.0 tree in a Document.
func NewV20(x *v20.Xliff) *Document {
	return &Document{Generation: Generation20, V20: x}
}
