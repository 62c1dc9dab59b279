package format

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/docket/pkg/content"
	"github.com/arthur-debert/docket/pkg/errors"
)

// HTML renders content as HTML fragments suitable for document export.
type HTML struct{}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Format renders c as an HTML fragment with headings starting at the
// given level.
//
// Nil content is the fixed no-documentation paragraph. A leaf is a
// single paragraph. A structured node renders its ordered entries
// first, each as its own paragraph in text form (no recursion), then
// its named part: one definition list when every named value is a
// leaf, otherwise a heading block per name with the nested content
// rendered one level deeper.
func (h *HTML) Format(c *content.Content, level int) (string, error) {
	els, err := h.elements(c, level)
	if err != nil {
		return "", err
	}
	return render(els)
}

func (h *HTML) elements(c *content.Content, level int) ([]*etree.Element, error) {
	if c == nil {
		return []*etree.Element{paragraph("No documentation available.")}, nil
	}
	if c.IsText() {
		return []*etree.Element{paragraph(c.Text)}, nil
	}

	var els []*etree.Element
	for _, e := range c.Ordered {
		els = append(els, paragraph(Text(e)))
	}

	if !c.HasNamed() {
		return els, nil
	}

	if allLeaves(c.Named) {
		return append(els, definitionList(c)), nil
	}

	for _, name := range c.Names() {
		els = append(els, heading(level, name))
		sub, err := h.nested(name, c.Named[name], level+1)
		if err != nil {
			return nil, err
		}
		els = append(els, sub...)
	}
	return els, nil
}

// nested renders a named value one heading level deeper, choosing
// between paragraph, unordered list, definition list and full
// recursion by the value's shape. A value with no applicable rule is a
// fatal error, not a silent skip.
func (h *HTML) nested(name string, v *content.Content, level int) ([]*etree.Element, error) {
	switch {
	case v == nil:
		return nil, errors.Newf(errors.ErrNoFormatRule,
			"no formatting rule applies to the value under %q", name)
	case v.IsText():
		return []*etree.Element{paragraph(v.Text)}, nil
	case v.HasOrdered() && !v.HasNamed():
		return []*etree.Element{unorderedList(v)}, nil
	case !v.HasOrdered() && allLeaves(v.Named):
		return []*etree.Element{definitionList(v)}, nil
	default:
		return h.elements(v, level)
	}
}

func allLeaves(named map[string]*content.Content) bool {
	for _, v := range named {
		if v == nil || v.IsStructured() {
			return false
		}
	}
	return true
}

func paragraph(text string) *etree.Element {
	p := etree.NewElement("p")
	p.SetText(text)
	return p
}

func heading(level int, text string) *etree.Element {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	el := etree.NewElement("h" + strconv.Itoa(level))
	el.SetText(text)
	return el
}

func unorderedList(c *content.Content) *etree.Element {
	ul := etree.NewElement("ul")
	for _, e := range c.Ordered {
		li := ul.CreateElement("li")
		li.SetText(Text(e))
	}
	return ul
}

func definitionList(c *content.Content) *etree.Element {
	dl := etree.NewElement("dl")
	for _, name := range c.Names() {
		dt := dl.CreateElement("dt")
		dt.SetText(name)
		dd := dl.CreateElement("dd")
		dd.SetText(Text(c.Named[name]))
	}
	return dl
}

// render serializes each element on its own line.
func render(els []*etree.Element) (string, error) {
	parts := make([]string, 0, len(els))
	for _, el := range els {
		doc := etree.NewDocument()
		doc.AddChild(el)
		s, err := doc.WriteToString()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "cannot serialize HTML element")
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n"), nil
}
