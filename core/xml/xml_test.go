package xml

import "testing"

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <data name="Greeting" xml:space="preserve">
    <value>Hello</value>
  </data>
  <data name="Farewell" type="System.Byte[]">
    <value>AAEC</value>
  </data>
</root>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := doc.Root()
	if root == nil {
		t.Fatal("Root() returned nil")
	}
	if root.Name() != "root" {
		t.Errorf("Root().Name() = %q, want root", root.Name())
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("<root><unclosed></root>")); err == nil {
		t.Error("expected error for mismatched tags")
	}
}

func TestXPath(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	nodes, err := doc.XPath("/root/data")
	if err != nil {
		t.Fatalf("XPath failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[0].Attr("name") != "Greeting" {
		t.Errorf("first data name = %q, want Greeting", nodes[0].Attr("name"))
	}

	t.Run("invalid expression", func(t *testing.T) {
		if _, err := doc.XPath("///"); err == nil {
			t.Error("expected error for invalid xpath")
		}
	})
}

func TestXPathFirst(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	node, err := doc.XPathFirst("//data[@name='Farewell']")
	if err != nil {
		t.Fatalf("XPathFirst failed: %v", err)
	}
	if node == nil {
		t.Fatal("expected a match")
	}
	if node.Attr("type") != "System.Byte[]" {
		t.Errorf("type = %q, want System.Byte[]", node.Attr("type"))
	}

	t.Run("no match", func(t *testing.T) {
		node, err := doc.XPathFirst("//missing")
		if err != nil {
			t.Fatalf("XPathFirst failed: %v", err)
		}
		if node != nil {
			t.Error("expected nil for no match")
		}
	})
}

func TestNodeAccessors(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := doc.Root()

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}

	first := children[0]
	if got, ok := first.ChildText("value"); !ok || got != "Hello" {
		t.Errorf("ChildText(value) = %q, %v; want Hello, true", got, ok)
	}
	if _, ok := first.ChildText("comment"); ok {
		t.Error("ChildText(comment) should not match")
	}

	if !first.HasAttr("name") {
		t.Error("expected name attribute")
	}
	if first.HasAttr("type") {
		t.Error("first entry should not have a type attribute")
	}

	attrs := children[1].Attributes()
	if attrs["type"] != "System.Byte[]" {
		t.Errorf("Attributes()[type] = %q", attrs["type"])
	}
}

func TestNilNode(t *testing.T) {
	var n *Node = &Node{}
	if n.Name() != "" || n.Text() != "" || n.Attr("x") != "" {
		t.Error("zero Node accessors should return empty values")
	}
	if n.Children() != nil || n.Attributes() != nil {
		t.Error("zero Node collections should be nil")
	}
}
