package resx

import (
	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v12"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v20"
)

// importFileID is the id of the synthetic <file> element wrapping imported
// units in a 2.0 tree. The schema requires one and a flat resource file
// has no grouping of its own.
const importFileID = "f1"

// ImportV12 builds a 1.2 tree from a flat resource envelope. Every textual
// entry becomes one trans-unit whose id and resname are the entry name and
// whose source is the entry value. Targets are left absent so every unit
// reads as untranslated. Non-string entries are skipped.
func ImportV12(data []byte, srcLang, trgLang string) (*v12.Xliff, error) {
	if err := checkSourceLanguage(srcLang); err != nil {
		return nil, err
	}
	return importV12(data, "", srcLang, trgLang)
}

// ImportV12File is ImportV12 reading the envelope from a path. The
// language arguments are validated before any file access.
func ImportV12File(path, srcLang, trgLang string) (*v12.Xliff, error) {
	if err := checkSourceLanguage(srcLang); err != nil {
		return nil, err
	}
	rf, err := ParseFile(path)
	if err != nil {
		return nil, wrapImportErr(err, path)
	}
	return buildV12(rf, path, srcLang, trgLang), nil
}

// ImportV20 builds a 2.0 tree from a flat resource envelope. Every textual
// entry becomes one unit holding a single segment with id "1", source set
// to the entry value and no target. Non-string entries are skipped.
func ImportV20(data []byte, srcLang, trgLang string) (*v20.Xliff, error) {
	if err := checkSourceLanguage(srcLang); err != nil {
		return nil, err
	}
	return importV20(data, "", srcLang, trgLang)
}

// ImportV20File is ImportV20 reading the envelope from a path.
func ImportV20File(path, srcLang, trgLang string) (*v20.Xliff, error) {
	if err := checkSourceLanguage(srcLang); err != nil {
		return nil, err
	}
	rf, err := ParseFile(path)
	if err != nil {
		return nil, wrapImportErr(err, path)
	}
	return buildV20(rf, path, srcLang, trgLang), nil
}

func importV12(data []byte, path, srcLang, trgLang string) (*v12.Xliff, error) {
	rf, err := Parse(data)
	if err != nil {
		return nil, errors.NewConversion("import", path, err)
	}
	return buildV12(rf, path, srcLang, trgLang), nil
}

func importV20(data []byte, path, srcLang, trgLang string) (*v20.Xliff, error) {
	rf, err := Parse(data)
	if err != nil {
		return nil, errors.NewConversion("import", path, err)
	}
	return buildV20(rf, path, srcLang, trgLang), nil
}

func buildV12(rf *File, path, srcLang, trgLang string) *v12.Xliff {
	file := v12.File{
		Original:       path,
		SourceLanguage: srcLang,
		TargetLanguage: trgLang,
		Datatype:       "plaintext",
	}
	for _, e := range rf.StringEntries() {
		file.Body.Units = append(file.Body.Units, v12.TransUnit{
			ID:      e.Name,
			Resname: e.Name,
			Source:  e.Value,
		})
	}
	return v12.New(file)
}

func buildV20(rf *File, path, srcLang, trgLang string) *v20.Xliff {
	file := v20.File{
		ID:       importFileID,
		Original: path,
	}
	for _, e := range rf.StringEntries() {
		file.Units = append(file.Units, v20.Unit{
			ID:   e.Name,
			Name: e.Name,
			Segments: []v20.Segment{
				{ID: "1", Source: e.Value},
			},
		})
	}
	return v20.New(srcLang, trgLang, file)
}

func checkSourceLanguage(srcLang string) error {
	if srcLang == "" {
		return errors.NewFormat("resx import", "", "source language code must not be empty")
	}
	return nil
}

// wrapImportErr keeps not-found errors intact and reports everything else
// as a conversion failure.
func wrapImportErr(err error, path string) error {
	if errors.Is(err, errors.ErrNotFound) {
		return err
	}
	return errors.NewConversion("import", path, err)
}
