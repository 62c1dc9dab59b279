package format_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/docket/pkg/content"
	"github.com/arthur-debert/docket/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver resolves string subjects from a fixed table and declines
// everything else.
type mapResolver map[string]*content.Content

func (m mapResolver) Lookup(subject interface{}) *content.Content {
	if s, ok := subject.(string); ok {
		return m[s]
	}
	return nil
}

func TestRenderTree(t *testing.T) {
	h := format.NewHTML()

	t.Run("scalar subject renders heading plus body", func(t *testing.T) {
		r := mapResolver{"topic": content.NewText("about the topic")}

		got, err := h.RenderTree(r, "topic", "topic", 1)
		require.NoError(t, err)
		assert.Contains(t, got, "<h1>topic</h1>")
		assert.Contains(t, got, "<p>about the topic</p>")
	})

	t.Run("undocumented subject gets the fallback paragraph", func(t *testing.T) {
		got, err := h.RenderTree(mapResolver{}, "thing", "thing", 1)
		require.NoError(t, err)
		assert.Contains(t, got, "<p>No documentation available.</p>")
	})

	t.Run("map members get dotted paths one level deeper", func(t *testing.T) {
		r := mapResolver{
			"api":   content.NewText("the api surface"),
			"read":  content.NewText("reads things"),
			"write": content.NewText("writes things"),
		}
		subject := map[string]interface{}{
			"read":  "read",
			"write": "write",
		}

		got, err := h.RenderTree(r, "api", subject, 1)
		require.NoError(t, err)
		assert.Contains(t, got, "<h1>api</h1>")
		assert.Contains(t, got, "<h2>api.read</h2>")
		assert.Contains(t, got, "<h2>api.write</h2>")
		assert.Contains(t, got, "<p>reads things</p>")
		// Members enumerate in sorted key order.
		assert.Less(t, strings.Index(got, "api.read"), strings.Index(got, "api.write"))
	})

	t.Run("struct members enumerate exported fields", func(t *testing.T) {
		type tool struct {
			Name   string
			hidden string //nolint:unused // must not be enumerated
		}

		got, err := h.RenderTree(mapResolver{}, "tool", tool{Name: "hammer"}, 1)
		require.NoError(t, err)
		assert.Contains(t, got, "<h2>tool.Name</h2>")
		assert.NotContains(t, got, "hidden")
	})

	t.Run("slice members use one-based indices", func(t *testing.T) {
		got, err := h.RenderTree(mapResolver{}, "items", []interface{}{"a", "b"}, 1)
		require.NoError(t, err)
		assert.Contains(t, got, "<h2>items.1</h2>")
		assert.Contains(t, got, "<h2>items.2</h2>")
	})

	t.Run("self-referential composites terminate", func(t *testing.T) {
		loop := map[string]interface{}{}
		loop["self"] = loop

		got, err := h.RenderTree(mapResolver{}, "loop", loop, 1)
		require.NoError(t, err)
		assert.Contains(t, got, "<h1>loop</h1>")
		assert.Contains(t, got, "<h2>loop.self</h2>")
		// The cycle is cut after the first visit.
		assert.NotContains(t, got, "loop.self.self")
	})
}
