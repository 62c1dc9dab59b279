package help

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/arthur-debert/docket/pkg/content"
	"github.com/arthur-debert/docket/pkg/extensions"
	"github.com/arthur-debert/docket/pkg/format"
	"github.com/arthur-debert/docket/pkg/store"
)

// UsageMessage is printed by Invoke when called with no subjects.
const UsageMessage = "Usage: Invoke(subject, ...) prints the documentation attached to each subject."

// Helper is the entry point tying the store, the extension chain and
// the formatters together.
type Helper struct {
	store *store.Store
	chain *extensions.Chain
	out   io.Writer
}

// Option configures a Helper.
type Option func(*Helper)

// WithWriter directs Invoke output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(h *Helper) { h.out = w }
}

// WithChain uses an existing extension chain instead of a fresh one.
func WithChain(c *extensions.Chain) Option {
	return func(h *Helper) { h.chain = c }
}

// New creates a Helper with an empty store.
func New(opts ...Option) *Helper {
	h := &Helper{out: os.Stdout}
	for _, opt := range opts {
		opt(h)
	}
	if h.chain == nil {
		h.chain = extensions.NewChain()
	}
	h.store = store.New(h.chain)
	return h
}

// Store exposes the underlying store, mainly for embedding code that
// needs direct access.
func (h *Helper) Store() *store.Store {
	return h.store
}

// Invoke prints the documentation for each subject. With no subjects
// it prints a one-line usage message and performs no lookups.
func (h *Helper) Invoke(subjects ...interface{}) {
	if len(subjects) == 0 {
		fmt.Fprintln(h.out, UsageMessage)
		return
	}

	for i, subject := range subjects {
		header := "Help:"
		if i > 0 {
			header = fmt.Sprintf("Help (#%d):", i+1)
		}
		fmt.Fprintf(h.out, "\n%s\n", header)

		c := h.Lookup(subject)
		if c == nil {
			fmt.Fprintf(h.out, "no documentation, runtime category = %s\n", runtimeCategory(subject))
			continue
		}
		fmt.Fprintln(h.out, format.Text(c))
	}
}

// Attach merges loosely-shaped documentation onto subject.
func (h *Helper) Attach(subject, doc interface{}) error {
	return h.store.Attach(subject, content.FromValue(doc))
}

// Lookup resolves content for subject through the store and the
// extension chain. A miss is nil.
func (h *Helper) Lookup(subject interface{}) *content.Content {
	return h.store.Lookup(subject)
}

// FormatText renders content as console text.
func (h *Helper) FormatText(c *content.Content) string {
	return format.Text(c)
}

// RegisterExtensionProvider appends a fallback lookup function to the
// extension chain.
func (h *Helper) RegisterExtensionProvider(fn func(subject interface{}) (*content.Content, bool)) {
	h.chain.Register(extensions.ProviderFunc(fn))
}

// EnableProvider builds the named provider factory and appends it to
// the chain. Unknown names and failing factories are configuration
// errors naming the provider.
func (h *Helper) EnableProvider(name string) error {
	return extensions.Enable(h.chain, name)
}

// ExportHTML renders a recursive documentation tree per subject and
// writes the combined document to path, with headings starting at h1.
func (h *Helper) ExportHTML(path string, subjects ...interface{}) error {
	return h.ExportHTMLFrom(path, 1, subjects...)
}

// ExportHTMLFrom is ExportHTML with a configurable starting heading
// level.
func (h *Helper) ExportHTMLFrom(path string, level int, subjects ...interface{}) error {
	f := format.NewHTML()
	sections := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		sec, err := f.RenderTree(h.store, subjectLabel(subject), subject, level)
		if err != nil {
			return err
		}
		sections = append(sections, sec)
	}
	return format.WriteHTML(path, sections...)
}

// runtimeCategory names a subject's runtime type for the
// no-documentation fallback line.
func runtimeCategory(subject interface{}) string {
	if subject == nil {
		return "nil"
	}
	return reflect.TypeOf(subject).String()
}

// subjectLabel names a subject for headings: string subjects are their
// own label, everything else is labeled by runtime type.
func subjectLabel(subject interface{}) string {
	if s, ok := subject.(string); ok {
		return s
	}
	return runtimeCategory(subject)
}
