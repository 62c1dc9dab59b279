package help

import (
	"github.com/arthur-debert/docket/pkg/content"
)

// DocstringBuilder carries one piece of documentation toward one or
// more subjects. It is transient: build it, apply it, drop it.
//
// The three application forms are equivalent; each performs a fresh
// merge against the subject's existing content, so applying twice
// appends twice. Every application attaches its own deep copy, keeping
// the records of different subjects independent.
type DocstringBuilder struct {
	h   *Helper
	c   *content.Content
	err error
}

// Docstring starts a builder for loosely-shaped documentation.
func (h *Helper) Docstring(doc interface{}) *DocstringBuilder {
	return &DocstringBuilder{h: h, c: content.FromValue(doc)}
}

// ApplyTo attaches the documentation to each subject in turn.
func (b *DocstringBuilder) ApplyTo(subjects ...interface{}) *DocstringBuilder {
	for _, subject := range subjects {
		b.apply(subject)
	}
	return b
}

// For attaches the documentation to a single subject.
func (b *DocstringBuilder) For(subject interface{}) *DocstringBuilder {
	b.apply(subject)
	return b
}

// Document attaches the documentation to a single subject.
func (b *DocstringBuilder) Document(subject interface{}) *DocstringBuilder {
	b.apply(subject)
	return b
}

// Err returns the first application error, if any.
func (b *DocstringBuilder) Err() error {
	return b.err
}

func (b *DocstringBuilder) apply(subject interface{}) {
	if err := b.h.store.Attach(subject, b.c.Clone()); err != nil && b.err == nil {
		b.err = err
	}
}
