package content

import (
	"sort"
)

// Content is the documentation payload attached to a subject.
//
// A node is either a text leaf or structured. Structured nodes carry an
// ordered, position-indexed part and a named part, both optional and
// possibly coexisting in one node. Absence of content is a nil
// *Content, never an empty node.
type Content struct {
	// Text is meaningful only on leaf nodes.
	Text string
	// Ordered holds the anonymous, position-indexed entries.
	Ordered []*Content
	// Named maps entry names to their values.
	Named map[string]*Content
}

// NewText creates a leaf node holding s.
func NewText(s string) *Content {
	return &Content{Text: s}
}

// NewList creates a structured node whose ordered part is entries.
func NewList(entries ...*Content) *Content {
	return &Content{Ordered: entries}
}

// NewMap creates a structured node whose named part is named.
func NewMap(named map[string]*Content) *Content {
	return &Content{Named: named}
}

// IsText reports whether c is a leaf node.
func (c *Content) IsText() bool {
	return len(c.Ordered) == 0 && len(c.Named) == 0
}

// IsStructured reports whether c carries an ordered or named part.
func (c *Content) IsStructured() bool {
	return !c.IsText()
}

// HasOrdered reports whether c has position-indexed entries.
func (c *Content) HasOrdered() bool {
	return len(c.Ordered) > 0
}

// HasNamed reports whether c has named entries.
func (c *Content) HasNamed() bool {
	return len(c.Named) > 0
}

// Append adds entries to the ordered part.
func (c *Content) Append(entries ...*Content) {
	c.Ordered = append(c.Ordered, entries...)
}

// Set stores an entry under name, replacing any prior value.
func (c *Content) Set(name string, e *Content) {
	if c.Named == nil {
		c.Named = make(map[string]*Content)
	}
	c.Named[name] = e
}

// Get returns the entry under name, or nil.
func (c *Content) Get(name string) *Content {
	return c.Named[name]
}

// Names returns the named-part keys in sorted order. Named entries are
// unordered by contract; sorting keeps traversal deterministic.
func (c *Content) Names() []string {
	if len(c.Named) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Named))
	for name := range c.Named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of c. Attaching one builder's content to
// several subjects must not alias nodes between their records.
func (c *Content) Clone() *Content {
	if c == nil {
		return nil
	}
	out := &Content{Text: c.Text}
	if len(c.Ordered) > 0 {
		out.Ordered = make([]*Content, len(c.Ordered))
		for i, e := range c.Ordered {
			out.Ordered[i] = e.Clone()
		}
	}
	if len(c.Named) > 0 {
		out.Named = make(map[string]*Content, len(c.Named))
		for name, e := range c.Named {
			out.Named[name] = e.Clone()
		}
	}
	return out
}
