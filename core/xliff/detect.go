package xliff

import (
	"fmt"

	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	corexml "github.com/FocuswithJustin/XliffCapsule/core/xml"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v12"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v20"
)

// DetectVersion inspects raw XML just deeply enough to classify it as one
// of the two generations: the root element must be <xliff> and its version
// attribute must be "1.2" or "2.0". The check runs before any structural
// parse so callers can dispatch to the matching loader instead of failing
// deep inside a mismatched schema decode.
func DetectVersion(data []byte) (Generation, error) {
	return detectVersion(data, "")
}

// DetectVersionFile is DetectVersion reading from a path. Compressed
// documents (.xz, .gz) are decompressed transparently.
func DetectVersionFile(path string) (Generation, error) {
	data, err := readDocumentFile(path)
	if err != nil {
		return GenerationUnknown, err
	}
	return detectVersion(data, path)
}

func detectVersion(data []byte, path string) (Generation, error) {
	doc, err := corexml.Parse(data)
	if err != nil {
		return GenerationUnknown, &errors.FormatError{
			Format:  "XLIFF",
			Path:    path,
			Message: "not well-formed XML",
			Err:     err,
		}
	}

	root := doc.Root()
	if root == nil {
		return GenerationUnknown, errors.NewFormat("XLIFF", path, "document has no root element")
	}
	if root.Name() != "xliff" {
		return GenerationUnknown, errors.NewFormat("XLIFF", path,
			fmt.Sprintf("unexpected root element <%s>", root.Name()))
	}

	version := root.Attr("version")
	switch version {
	case v12.Version:
		return Generation12, nil
	case v20.Version:
		return Generation20, nil
	case "":
		return GenerationUnknown, errors.NewFormat("XLIFF", path, "missing version attribute")
	default:
		return GenerationUnknown, errors.NewFormat("XLIFF", path,
			fmt.Sprintf("unsupported version %q", version))
	}
}
