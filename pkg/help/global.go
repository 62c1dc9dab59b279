package help

import (
	"github.com/arthur-debert/docket/pkg/content"
)

// Default is the process-wide helper backing the package-level
// convenience functions. Embedding code that wants isolated state
// creates its own Helper with New.
var Default = New()

// Invoke prints documentation for each subject via the default helper.
func Invoke(subjects ...interface{}) {
	Default.Invoke(subjects...)
}

// Docstring starts a documentation builder on the default helper.
func Docstring(doc interface{}) *DocstringBuilder {
	return Default.Docstring(doc)
}

// Lookup resolves content for subject via the default helper.
func Lookup(subject interface{}) *content.Content {
	return Default.Lookup(subject)
}

// FormatText renders content as console text.
func FormatText(c *content.Content) string {
	return Default.FormatText(c)
}

// RegisterExtensionProvider appends a fallback lookup function to the
// default helper's chain.
func RegisterExtensionProvider(fn func(subject interface{}) (*content.Content, bool)) {
	Default.RegisterExtensionProvider(fn)
}

// EnableProvider enables a named provider factory on the default
// helper's chain.
func EnableProvider(name string) error {
	return Default.EnableProvider(name)
}
