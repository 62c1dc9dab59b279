package format

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/docket/pkg/content"
)

// Resolver looks up documentation for a subject. The store satisfies
// this, as does the help facade.
type Resolver interface {
	Lookup(subject interface{}) *content.Content
}

// RenderTree documents a subject recursively as HTML. The subject's
// own documentation renders under a heading at the given level; when
// the subject is composite (map, slice, array or struct) every member
// reachable by enumeration is documented below it, labeled with a
// dotted path and one heading level deeper per nesting step.
//
// A visited set keyed by identity guards against self-referential
// structures, which would otherwise recurse without bound.
func (h *HTML) RenderTree(r Resolver, name string, subject interface{}, level int) (string, error) {
	visited := make(map[uintptr]bool)
	var sections []string
	if err := h.renderTree(r, name, subject, level, visited, &sections); err != nil {
		return "", err
	}
	return strings.Join(sections, "\n"), nil
}

func (h *HTML) renderTree(r Resolver, name string, subject interface{}, level int, visited map[uintptr]bool, sections *[]string) error {
	title, err := render([]*etree.Element{heading(level, name)})
	if err != nil {
		return err
	}
	body, err := h.Format(r.Lookup(subject), level+1)
	if err != nil {
		return err
	}
	*sections = append(*sections, title, body)

	rv := reflect.ValueOf(subject)
	if !rv.IsValid() {
		return nil
	}

	// Identity guard for reference kinds; value kinds cannot cycle.
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		id := rv.Pointer()
		if visited[id] {
			return nil
		}
		visited[id] = true
	}

	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		labels := make([]string, len(keys))
		byLabel := make(map[string]reflect.Value, len(keys))
		for i, k := range keys {
			labels[i] = fmt.Sprint(k.Interface())
			byLabel[labels[i]] = rv.MapIndex(k)
		}
		sort.Strings(labels)
		for _, label := range labels {
			member := byLabel[label]
			if err := h.renderMember(r, name+"."+label, member, level+1, visited, sections); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			label := name + "." + strconv.Itoa(i+1)
			if err := h.renderMember(r, label, rv.Index(i), level+1, visited, sections); err != nil {
				return err
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			label := name + "." + t.Field(i).Name
			if err := h.renderMember(r, label, rv.Field(i), level+1, visited, sections); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *HTML) renderMember(r Resolver, label string, member reflect.Value, level int, visited map[uintptr]bool, sections *[]string) error {
	if !member.IsValid() || !member.CanInterface() {
		return nil
	}
	return h.renderTree(r, label, member.Interface(), level, visited, sections)
}
