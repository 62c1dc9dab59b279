package extensions

import (
	"reflect"

	"github.com/arthur-debert/docket/pkg/content"
)

// StructProvider answers lookups for struct values (or pointers to
// them) by reflective introspection. The result keeps the fixed shape
// class / methods / fields so consumers can rely on it.
type StructProvider struct{}

// NewStructProvider creates the reflective introspection provider.
func NewStructProvider() *StructProvider {
	return &StructProvider{}
}

// Resolve implements Provider. It declines any subject that is not a
// struct or a pointer to one.
func (p *StructProvider) Resolve(subject interface{}) (*content.Content, bool) {
	if subject == nil {
		return nil, false
	}

	t := reflect.TypeOf(subject)
	base := t
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, false
	}

	c := &content.Content{}
	c.Set("class", content.NewText(base.String()))

	// Method sets differ between T and *T; report the subject's own.
	if t.NumMethod() > 0 {
		methods := make([]*content.Content, 0, t.NumMethod())
		for i := 0; i < t.NumMethod(); i++ {
			methods = append(methods, content.NewText(t.Method(i).Name))
		}
		c.Set("methods", content.NewList(methods...))
	}

	var fields []*content.Content
	for i := 0; i < base.NumField(); i++ {
		f := base.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, content.NewText(f.Name))
	}
	if len(fields) > 0 {
		c.Set("fields", content.NewList(fields...))
	}

	return c, true
}

func init() {
	registerBuiltinFactories()
}

// registerBuiltinFactories wires the providers that ship with the
// library into the factory registry.
func registerBuiltinFactories() {
	_ = RegisterFactory("struct", func() (Provider, error) {
		return NewStructProvider(), nil
	})
}
