// Package v20 models the segment-based XLIFF 2.0 document tree.
// As with v12, the structs are wire-faithful encoding/xml mappings.
package v20

import "encoding/xml"

const (
	// Version is the fixed version attribute of every 2.0 document.
	Version = "2.0"
	// Namespace is the fixed document namespace.
	Namespace = "urn:oasis:names:tc:xliff:document:2.0"
)

// Xliff is the root of an XLIFF 2.0 document. The source language lives on
// the document, not on the file as in 1.2.
type Xliff struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:xliff:document:2.0 xliff"`
	Version string   `xml:"version,attr"`
	SrcLang string   `xml:"srcLang,attr"`
	TrgLang string   `xml:"trgLang,attr,omitempty"`
	Files   []File   `xml:"file"`
}

// New returns an empty 2.0 document with the version tag and languages set.
func New(srcLang, trgLang string, files ...File) *Xliff {
	return &Xliff{Version: Version, SrcLang: srcLang, TrgLang: trgLang, Files: files}
}

// File is one logical file inside a 2.0 document.
type File struct {
	ID       string  `xml:"id,attr"`
	Original string  `xml:"original,attr,omitempty"`
	Header   *Header `xml:"header"`
	Units    []Unit  `xml:"unit"`
	Groups   []Group `xml:"group"`
}

// Header holds descriptive file metadata.
type Header struct {
	Notes []Note `xml:"note"`
}

// Note is a free-text annotation.
type Note struct {
	Text string `xml:",chardata"`
}

// Group is a recursive container of units.
type Group struct {
	ID     string  `xml:"id,attr,omitempty"`
	Name   string  `xml:"name,attr,omitempty"`
	Units  []Unit  `xml:"unit"`
	Groups []Group `xml:"group"`
}

// Unit is one addressable translation entry holding one or more segments.
// The approval flag defaults to unapproved and is omitted on the wire when
// unset.
type Unit struct {
	ID       string    `xml:"id,attr"`
	Name     string    `xml:"name,attr,omitempty"`
	Approved YesNo     `xml:"approved,attr,omitempty"`
	Notes    []Note    `xml:"notes>note"`
	Segments []Segment `xml:"segment"`
}

// Segment is the smallest translatable span, carrying its own state and
// source/target text.
type Segment struct {
	ID     string  `xml:"id,attr,omitempty"`
	State  State   `xml:"state,attr,omitempty"`
	Source string  `xml:"source"`
	Target *Target `xml:"target"`
}

// Target is the translated text of a segment. A present-but-empty target
// is distinct from an absent one.
type Target struct {
	Text string `xml:",chardata"`
}

// ResourceKey returns the flat-resource key base for the unit: the name
// when set, the id otherwise.
func (u *Unit) ResourceKey() string {
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}

// TargetText returns the target text and whether a target element exists.
func (s *Segment) TargetText() (string, bool) {
	if s.Target == nil {
		return "", false
	}
	return s.Target.Text, true
}
