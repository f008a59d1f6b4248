package resx

import (
	"fmt"

	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v12"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff/v20"
)

// ExportOptions controls which text an exported entry carries and which
// units are included.
type ExportOptions struct {
	// UseTargetAsValue selects the translated text as the entry value,
	// falling back to the source text when no translation is present.
	// When false the source text is always used.
	UseTargetAsValue bool

	// IncludeUntranslated keeps units whose target is absent or empty.
	// When false those units are dropped from the output.
	IncludeUntranslated bool
}

// Export flattens an XLIFF document into a resource file. It accepts a
// *v12.Xliff, a *v20.Xliff or a *xliff.Document wrapping either. Entries
// appear in document order: within each file the top-level units come
// first, then each group's own units before its nested groups.
func Export(doc any, opts ExportOptions) (*File, error) {
	switch d := doc.(type) {
	case *xliff.Document:
		if d == nil {
			return nil, errors.NewTypeMismatch("export", "nil", "non-nil document")
		}
		switch d.Generation {
		case xliff.Generation12:
			if d.V12 == nil {
				return nil, errors.NewTypeMismatch("export", "document with nil 1.2 payload", "document with 1.2 payload")
			}
			return exportV12(d.V12, opts)
		case xliff.Generation20:
			if d.V20 == nil {
				return nil, errors.NewTypeMismatch("export", "document with nil 2.0 payload", "document with 2.0 payload")
			}
			return exportV20(d.V20, opts)
		default:
			return nil, errors.NewTypeMismatch("export", d.Generation.String(), "document of a known generation")
		}
	case *v12.Xliff:
		if d == nil {
			return nil, errors.NewTypeMismatch("export", "nil", "non-nil *v12.Xliff")
		}
		return exportV12(d, opts)
	case *v20.Xliff:
		if d == nil {
			return nil, errors.NewTypeMismatch("export", "nil", "non-nil *v20.Xliff")
		}
		return exportV20(d, opts)
	default:
		return nil, errors.NewTypeMismatch("export", fmt.Sprintf("%T", doc),
			"*v12.Xliff, *v20.Xliff or *xliff.Document")
	}
}

func exportV12(x *v12.Xliff, opts ExportOptions) (*File, error) {
	out := &File{}
	for i := range x.Files {
		f := &x.Files[i]
		exportUnits12(out, f.Body.Units, opts)
		for j := range f.Body.Groups {
			exportGroup12(out, &f.Body.Groups[j], opts)
		}
	}
	return out, nil
}

func exportGroup12(out *File, g *v12.Group, opts ExportOptions) {
	exportUnits12(out, g.Units, opts)
	for i := range g.Groups {
		exportGroup12(out, &g.Groups[i], opts)
	}
}

func exportUnits12(out *File, units []v12.TransUnit, opts ExportOptions) {
	for i := range units {
		u := &units[i]
		target, translated := u.TargetText()
		if !opts.IncludeUntranslated && (!translated || target == "") {
			continue
		}
		value := u.Source
		if opts.UseTargetAsValue && translated && target != "" {
			value = target
		}
		out.Entries = append(out.Entries, Entry{Name: u.ResourceKey(), Value: value})
	}
}

func exportV20(x *v20.Xliff, opts ExportOptions) (*File, error) {
	out := &File{}
	for i := range x.Files {
		f := &x.Files[i]
		if err := exportUnits20(out, f.Units, opts); err != nil {
			return nil, err
		}
		for j := range f.Groups {
			if err := exportGroup20(out, &f.Groups[j], opts); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func exportGroup20(out *File, g *v20.Group, opts ExportOptions) error {
	if err := exportUnits20(out, g.Units, opts); err != nil {
		return err
	}
	for i := range g.Groups {
		if err := exportGroup20(out, &g.Groups[i], opts); err != nil {
			return err
		}
	}
	return nil
}

func exportUnits20(out *File, units []v20.Unit, opts ExportOptions) error {
	for i := range units {
		u := &units[i]
		if len(u.Segments) == 0 {
			return errors.NewValidation("unit "+u.ID, "unit has no segments")
		}
		base := u.ResourceKey()
		multi := len(u.Segments) > 1
		for j := range u.Segments {
			s := &u.Segments[j]
			target, translated := s.TargetText()
			if !opts.IncludeUntranslated && (!translated || target == "") {
				continue
			}
			value := s.Source
			if opts.UseTargetAsValue && translated && target != "" {
				value = target
			}
			key := base
			if multi {
				key = base + "_" + s.ID
			}
			out.Entries = append(out.Entries, Entry{Name: key, Value: value})
		}
	}
	return nil
}
