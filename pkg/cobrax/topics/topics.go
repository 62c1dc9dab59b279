// Package topics provides named long-form documentation for a CLI,
// loaded from an fs.FS (typically an embed.FS) and rendered for the
// terminal.
package topics

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/docket/pkg/errors"
)

// Topic is one help topic.
type Topic struct {
	Name    string
	Format  string // file extension, e.g. ".md"
	Content string
}

// Manager holds the loaded topics.
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Options configures a Manager.
type Options struct {
	// Renderer formats topic content for display. Defaults to
	// PlainRenderer.
	Renderer Renderer
}

// Load reads every .md and .txt file in fsys into a Manager, keyed by
// base filename without extension.
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(data),
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load help topics")
	}
	return m, nil
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// Names returns all topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for terminal display.
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Format)
}
