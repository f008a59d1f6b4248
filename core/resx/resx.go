// Package resx models the flat key/value resource-file envelope and
// converts between it and the XLIFF document trees.
//
// The envelope is the conventional .resx shape: a <root> element carrying
// four fixed descriptor headers followed by one <data> element per
// resource, each with a whitespace-preserving <value> child. Emitting that
// exact shape is what keeps the output readable by stock resource
// tooling.
package resx

import (
	"fmt"
	"os"
	"strings"

	"github.com/FocuswithJustin/XliffCapsule/core/encoding"
	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	corexml "github.com/FocuswithJustin/XliffCapsule/core/xml"
	"github.com/FocuswithJustin/XliffCapsule/internal/fileutil"
)

// Fixed descriptor values required by conventional consumers of the flat
// resource format.
const (
	MimeType         = "text/microsoft-resx"
	SchemaVersion    = "2.0"
	ReaderIdentifier = "System.Resources.ResXResourceReader, System.Windows.Forms, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"
	WriterIdentifier = "System.Resources.ResXResourceWriter, System.Windows.Forms, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"
)

// stringTypeName is the declared type of plain string entries. Entries
// with no type declaration are strings by convention.
const stringTypeName = "System.String"

// File is a flat resource file: an ordered list of named entries.
type File struct {
	Entries []Entry
}

// Entry is one (key, value) resource pair. Type is empty for plain
// strings; any other declared type marks a non-textual resource.
type Entry struct {
	Name    string
	Value   string
	Type    string
	Comment string
}

// IsString reports whether the entry is a textual resource: its declared
// type is absent or is the string type.
func (e *Entry) IsString() bool {
	return e.Type == "" || strings.HasPrefix(e.Type, stringTypeName)
}

// StringEntries returns the textual entries in stored order.
func (f *File) StringEntries() []Entry {
	var out []Entry
	for _, e := range f.Entries {
		if e.IsString() {
			out = append(out, e)
		}
	}
	return out
}

// Parse reads a flat resource envelope from raw XML.
func Parse(data []byte) (*File, error) {
	doc, err := corexml.Parse(data)
	if err != nil {
		return nil, &errors.FormatError{Format: "resx", Message: "not well-formed XML", Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.NewFormat("resx", "", "document has no root element")
	}
	if root.Name() != "root" {
		return nil, errors.NewFormat("resx", "",
			fmt.Sprintf("unexpected root element <%s>", root.Name()))
	}

	nodes, err := doc.XPath("/root/data")
	if err != nil {
		return nil, &errors.FormatError{Format: "resx", Message: "data query failed", Err: err}
	}

	f := &File{}
	for _, n := range nodes {
		name := n.Attr("name")
		if name == "" {
			return nil, errors.NewFormat("resx", "", "data element without name attribute")
		}
		value, _ := n.ChildText("value")
		comment, _ := n.ChildText("comment")
		f.Entries = append(f.Entries, Entry{
			Name:    name,
			Value:   value,
			Type:    n.Attr("type"),
			Comment: comment,
		})
	}
	return f, nil
}

// ParseFile is Parse reading from a path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("resource file", path)
		}
		return nil, errors.NewIO("read", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		if fe, ok := err.(*errors.FormatError); ok {
			fe.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Bytes serializes the envelope with the four fixed descriptor headers
// and one whitespace-preserving data element per entry.
func (f *File) Bytes() []byte {
	var buf strings.Builder
	buf.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	buf.WriteString("<root>\n")

	writeHeader(&buf, "resmimetype", MimeType)
	writeHeader(&buf, "version", SchemaVersion)
	writeHeader(&buf, "reader", ReaderIdentifier)
	writeHeader(&buf, "writer", WriterIdentifier)

	for _, e := range f.Entries {
		buf.WriteString("  <data name=\"")
		buf.WriteString(encoding.EscapeXMLAttr(e.Name))
		buf.WriteString("\"")
		if e.Type != "" {
			buf.WriteString(" type=\"")
			buf.WriteString(encoding.EscapeXMLAttr(e.Type))
			buf.WriteString("\"")
		}
		buf.WriteString(" xml:space=\"preserve\">\n")
		buf.WriteString("    <value>")
		buf.WriteString(encoding.EscapeXMLText(e.Value))
		buf.WriteString("</value>\n")
		if e.Comment != "" {
			buf.WriteString("    <comment>")
			buf.WriteString(encoding.EscapeXMLText(e.Comment))
			buf.WriteString("</comment>\n")
		}
		buf.WriteString("  </data>\n")
	}

	buf.WriteString("</root>\n")
	return []byte(buf.String())
}

// Write serializes the envelope to a path atomically, creating missing
// parent directories.
func (f *File) Write(path string) error {
	if err := fileutil.WriteAtomic(path, f.Bytes(), 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

func writeHeader(buf *strings.Builder, name, value string) {
	buf.WriteString("  <resheader name=\"")
	buf.WriteString(encoding.EscapeXMLAttr(name))
	buf.WriteString("\">\n    <value>")
	buf.WriteString(encoding.EscapeXMLText(value))
	buf.WriteString("</value>\n  </resheader>\n")
}
