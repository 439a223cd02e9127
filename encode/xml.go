package encode

import (
	"strings"

	"github.com/hepstream/lhef"
	"github.com/hepstream/lhef/syntax"
)

// XMLHeader writes a structured <header> block from an element tree.
// If the root element is not named "header" an enclosing header tag
// is added around it. Newlines are inserted where the format requires
// the tags to sit on their own lines.
func (w *Writer) XMLHeader(el *lhef.XMLTree) error {
	if err := w.assertState(ExpectingHeaderOrInit, "xml header"); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(syntax.HeaderStart)
	if el.Tag != "header" {
		b.WriteString(">\n")
		xmlString(&b, el)
		b.WriteByte('\n')
	} else {
		for _, a := range el.Attr {
			b.WriteByte(' ')
			b.WriteString(attrKey(a.Space, a.Key))
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteByte('"')
		}
		b.WriteByte('>')
		children := el.ChildElements()
		if len(children) > 0 {
			b.WriteByte('\n')
			for _, child := range children {
				xmlString(&b, child)
			}
		}
		text := el.Text()
		if text == "" {
			b.WriteByte('\n')
		} else {
			if len(children) == 0 && !strings.HasPrefix(text, "\n") {
				b.WriteByte('\n')
			}
			b.WriteString(text)
			if !strings.HasSuffix(text, "\n") {
				b.WriteByte('\n')
			}
		}
	}
	b.WriteString(syntax.HeaderEnd)
	b.WriteByte('\n')
	return w.emit(b.String())
}

// xmlString serializes an element the way the reader expects it back:
// opening tag with attributes, leading text, children, closing tag.
func xmlString(b *strings.Builder, el *lhef.XMLTree) {
	b.WriteByte('<')
	b.WriteString(el.Tag)
	for _, a := range el.Attr {
		b.WriteByte(' ')
		b.WriteString(attrKey(a.Space, a.Key))
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(el.Text())
	for _, child := range el.ChildElements() {
		xmlString(b, child)
	}
	b.WriteString("</")
	b.WriteString(el.Tag)
	b.WriteByte('>')
}

func attrKey(space, key string) string {
	if space == "" {
		return key
	}
	return space + ":" + key
}
