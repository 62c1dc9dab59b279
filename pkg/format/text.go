package format

import (
	"strings"

	"github.com/arthur-debert/docket/pkg/content"
)

// Text renders content as plain console text.
//
// A leaf is its own string. A structured node renders its ordered
// entries first, one line each in index order, then its named entries
// as "name = value" lines; a list-valued named entry renders as a
// braced block with one indented line per element. Nil content renders
// as the empty string; callers wanting a fallback message substitute
// one themselves (see the help facade).
func Text(c *content.Content) string {
	if c == nil {
		return ""
	}
	if c.IsText() {
		return c.Text
	}

	var lines []string
	for _, e := range c.Ordered {
		lines = append(lines, Text(e))
	}
	for _, name := range c.Names() {
		v := c.Named[name]
		if v != nil && v.HasOrdered() && !v.HasNamed() {
			lines = append(lines, name+" = {")
			for _, e := range v.Ordered {
				lines = append(lines, "  "+Text(e))
			}
			lines = append(lines, "}")
			continue
		}
		lines = append(lines, name+" = "+Text(v))
	}
	return strings.Join(lines, "\n")
}
