package xliff

import (
	"encoding/xml"

	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v12"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v20"
)

// Load detects the generation of raw XML and deserializes it into the
// matching typed tree.
func Load(data []byte) (*Document, error) {
	return load(data, "")
}

// LoadFile is Load reading from a path.
func LoadFile(path string) (*Document, error) {
	data, err := readDocumentFile(path)
	if err != nil {
		return nil, err
	}
	return load(data, path)
}

func load(data []byte, path string) (*Document, error) {
	gen, err := detectVersion(data, path)
	if err != nil {
		return nil, err
	}
	switch gen {
	case Generation12:
		doc, err := loadV12(data, path)
		if err != nil {
			return nil, err
		}
		return NewV12(doc), nil
	default:
		doc, err := loadV20(data, path)
		if err != nil {
			return nil, err
		}
		return NewV20(doc), nil
	}
}

// LoadV12 deserializes raw XML directly into a 1.2 tree without version
// detection.
func LoadV12(data []byte) (*v12.Xliff, error) {
	return loadV12(data, "")
}

// LoadV12File is LoadV12 reading from a path.
func LoadV12File(path string) (*v12.Xliff, error) {
	data, err := readDocumentFile(path)
	if err != nil {
		return nil, err
	}
	return loadV12(data, path)
}

// LoadV20 deserializes raw XML directly into a 2.0 tree without version
// detection.
func LoadV20(data []byte) (*v20.Xliff, error) {
	return loadV20(data, "")
}

// LoadV20File is LoadV20 reading from a path.
func LoadV20File(path string) (*v20.Xliff, error) {
	data, err := readDocumentFile(path)
	if err != nil {
		return nil, err
	}
	return loadV20(data, path)
}

func loadV12(data []byte, path string) (*v12.Xliff, error) {
	var doc v12.Xliff
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.FormatError{
			Format:  "XLIFF 1.2",
			Path:    path,
			Message: "structural deserialization failed",
			Err:     err,
		}
	}
	return &doc, nil
}

func loadV20(data []byte, path string) (*v20.Xliff, error) {
	var doc v20.Xliff
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.FormatError{
			Format:  "XLIFF 2.0",
			Path:    path,
			Message: "structural deserialization failed",
			Err:     err,
		}
	}
	return &doc, nil
}
