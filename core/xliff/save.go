package xliff

import (
	"encoding/xml"
	"fmt"

	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v12"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v20"
)

const acceptedTypes = "*v12.Xliff, *v20.Xliff or *xliff.Document"

// Save serializes a document tree to a path. It accepts a *Document of
// either generation, a *v12.Xliff or a *v20.Xliff; anything else is a
// TypeMismatchError, reported before any I/O. Missing parent directories
// are created, the write is atomic, and a .xz or .gz suffix compresses the
// output.
func Save(doc any, path string, pretty bool) error {
	data, err := Marshal(doc, pretty)
	if err != nil {
		return err
	}
	return writeDocumentFile(path, data)
}

// Marshal serializes a document tree to XML text, for callers that
// transmit rather than store. The accepted types match Save.
func Marshal(doc any, pretty bool) ([]byte, error) {
	switch d := doc.(type) {
	case *Document:
		if d == nil {
			return nil, errors.NewTypeMismatch("marshal", "nil *xliff.Document", acceptedTypes)
		}
		switch d.Generation {
		case Generation12:
			if d.V12 == nil {
				return nil, errors.NewTypeMismatch("marshal", "XLIFF 1.2 document without a 1.2 tree", acceptedTypes)
			}
			return MarshalV12(d.V12, pretty)
		case Generation20:
			if d.V20 == nil {
				return nil, errors.NewTypeMismatch("marshal", "XLIFF 2.0 document without a 2.0 tree", acceptedTypes)
			}
			return MarshalV20(d.V20, pretty)
		default:
			return nil, errors.NewTypeMismatch("marshal", "document of unknown generation", acceptedTypes)
		}
	case *v12.Xliff:
		return MarshalV12(d, pretty)
	case *v20.Xliff:
		return MarshalV20(d, pretty)
	default:
		return nil, errors.NewTypeMismatch("marshal", fmt.Sprintf("%T", doc), acceptedTypes)
	}
}

// MarshalV12 serializes a 1.2 tree, always declaring the fixed namespace,
// the "1.2" version tag and an XML declaration.
func MarshalV12(x *v12.Xliff, pretty bool) ([]byte, error) {
	if x == nil {
		return nil, errors.NewTypeMismatch("marshal", "nil *v12.Xliff", acceptedTypes)
	}
	doc := *x
	doc.Version = v12.Version
	return marshalDocument(&doc, "XLIFF 1.2", pretty)
}

// MarshalV20 serializes a 2.0 tree, always declaring the fixed namespace,
// the "2.0" version tag and an XML declaration.
func MarshalV20(x *v20.Xliff, pretty bool) ([]byte, error) {
	if x == nil {
		return nil, errors.NewTypeMismatch("marshal", "nil *v20.Xliff", acceptedTypes)
	}
	doc := *x
	doc.Version = v20.Version
	return marshalDocument(&doc, "XLIFF 2.0", pretty)
}

func marshalDocument(v any, format string, pretty bool) ([]byte, error) {
	var body []byte
	var err error
	if pretty {
		body, err = xml.MarshalIndent(v, "", "  ")
	} else {
		body, err = xml.Marshal(v)
	}
	if err != nil {
		return nil, &errors.FormatError{
			Format:  format,
			Message: "serialization failed",
			Err:     err,
		}
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	if pretty {
		out = append(out, '\n')
	}
	return out, nil
}
