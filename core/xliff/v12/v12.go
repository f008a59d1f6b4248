// Package v12 models the legacy flat-unit XLIFF 1.2 document tree.
// The structs are wire-faithful: encoding/xml marshaling of a tree produces
// the on-disk form, and unmarshaling the on-disk form reproduces the tree.
package v12

import "encoding/xml"

const (
	// Version is the fixed version attribute of every 1.2 document.
	Version = "1.2"
	// Namespace is the fixed document namespace.
	Namespace = "urn:oasis:names:tc:xliff:document:1.2"
)

// Xliff is the root of an XLIFF 1.2 document.
type Xliff struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:xliff:document:1.2 xliff"`
	Version string   `xml:"version,attr"`
	Files   []File   `xml:"file"`
}

// New returns an empty 1.2 document with the version tag set.
func New(files ...File) *Xliff {
	return &Xliff{Version: Version, Files: files}
}

// File is one original-document entry inside an XLIFF 1.2 document.
type File struct {
	Original       string  `xml:"original,attr"`
	SourceLanguage string  `xml:"source-language,attr"`
	TargetLanguage string  `xml:"target-language,attr,omitempty"`
	Datatype       string  `xml:"datatype,attr"`
	Header         *Header `xml:"header"`
	Body           Body    `xml:"body"`
}

// Header holds descriptive file metadata.
type Header struct {
	Tool  *Tool  `xml:"tool"`
	Notes []Note `xml:"note"`
}

// Tool identifies the tool that produced the file.
type Tool struct {
	ID      string `xml:"tool-id,attr,omitempty"`
	Name    string `xml:"tool-name,attr,omitempty"`
	Version string `xml:"tool-version,attr,omitempty"`
}

// Note is a free-text annotation.
type Note struct {
	From string `xml:"from,attr,omitempty"`
	Text string `xml:",chardata"`
}

// Body holds the translation units and groups of a file, each in stored
// order.
type Body struct {
	Units  []TransUnit `xml:"trans-unit"`
	Groups []Group     `xml:"group"`
}

// Group is a recursive container of translation units.
type Group struct {
	ID      string      `xml:"id,attr,omitempty"`
	Resname string      `xml:"resname,attr,omitempty"`
	Units   []TransUnit `xml:"trans-unit"`
	Groups  []Group     `xml:"group"`
}

// TransUnit is one addressable translation entry. Source is always present
// (possibly empty); Target is absent when nil. The state attribute is
// omitted when the unit is in the default "new" state.
type TransUnit struct {
	ID       string  `xml:"id,attr"`
	Resname  string  `xml:"resname,attr,omitempty"`
	Approved string  `xml:"approved,attr,omitempty"`
	State    State   `xml:"state,attr,omitempty"`
	Source   string  `xml:"source"`
	Target   *Target `xml:"target"`
	Notes    []Note  `xml:"note"`
}

// Target is the translated text of a unit. A present-but-empty target is
// distinct from an absent one.
type Target struct {
	Text string `xml:",chardata"`
}

// ResourceKey returns the flat-resource key for the unit: the resource
// name when set, the id otherwise.
func (u *TransUnit) ResourceKey() string {
	if u.Resname != "" {
		return u.Resname
	}
	return u.ID
}

// TargetText returns the target text and whether a target element exists.
func (u *TransUnit) TargetText() (string, bool) {
	if u.Target == nil {
		return "", false
	}
	return u.Target.Text, true
}
