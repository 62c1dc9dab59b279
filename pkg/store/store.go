package store

import (
	"reflect"
	"runtime"
	"sync"

	"github.com/arthur-debert/docket/pkg/content"
	"github.com/arthur-debert/docket/pkg/errors"
	"github.com/arthur-debert/docket/pkg/extensions"
	"github.com/arthur-debert/docket/pkg/logging"
)

// Store associates arbitrary subjects with documentation content
// without keeping those subjects alive.
//
// Reference-kind subjects (pointers, maps, slices, funcs, channels)
// are keyed by their identity word only; the store never holds the
// subject itself, so it contributes no ownership edge. For pointer
// subjects a finalizer evicts the entry when the pointee is reclaimed,
// so a later allocation reusing the identity cannot resurrect stale
// documentation. Comparable value subjects (strings, numbers, bools)
// are keyed by value; values have no lifetime to preserve.
//
// Two identity caveats follow from what Go exposes: func subjects are
// keyed by code pointer, so closures over the same function body
// share documentation; slice subjects are keyed by their data pointer,
// so slices sharing a backing array do too.
type Store struct {
	mu      sync.RWMutex
	chain   *extensions.Chain
	byID    map[uintptr]*refEntry
	byValue map[interface{}]*content.Content
	gen     uint64
}

// refEntry is the record for a reference-kind subject. The generation
// lets a late-running finalizer recognize that its identity has been
// reattached and must not be evicted.
type refEntry struct {
	c   *content.Content
	gen uint64
}

// New creates an empty store backed by the given fallback chain.
// A nil chain means lookups never fall back.
func New(chain *extensions.Chain) *Store {
	return &Store{
		chain:   chain,
		byID:    make(map[uintptr]*refEntry),
		byValue: make(map[interface{}]*content.Content),
	}
}

// Chain returns the store's fallback chain.
func (s *Store) Chain() *extensions.Chain {
	return s.chain
}

// SetContent unconditionally associates c with subject, discarding any
// prior association. Merge-aware callers should use Attach instead.
func (s *Store) SetContent(subject interface{}, c *content.Content) error {
	id, isRef, err := subjectKey(subject)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(subject, id, isRef, c)
	return nil
}

// setLocked stores c for an already-classified subject. Must be called
// with s.mu held.
func (s *Store) setLocked(subject interface{}, id uintptr, isRef bool, c *content.Content) {
	if !isRef {
		s.byValue[subject] = c
		return
	}

	e, ok := s.byID[id]
	if !ok {
		s.gen++
		e = &refEntry{gen: s.gen}
		s.byID[id] = e
		s.armEviction(subject, id, e.gen)
	}
	e.c = c
}

// ownLocked returns the store-local content for an already-classified
// subject. Must be called with s.mu held.
func (s *Store) ownLocked(subject interface{}, id uintptr, isRef bool) *content.Content {
	if isRef {
		if e, ok := s.byID[id]; ok {
			return e.c
		}
		return nil
	}
	return s.byValue[subject]
}

// Attach merges c into the subject's existing content, resolved
// through the full lookup chain, and stores the result as the
// subject's own content. Attaching always materializes a local
// override, even when the prior content came from a provider.
//
// Attach is intentionally not idempotent: each call merges again,
// compounding structure. The merge and store happen under one write
// lock, so concurrent attaches to the same subject all land. Provider
// fallback is resolved before the lock is taken; content stored
// locally in the meantime still wins inside the critical section.
func (s *Store) Attach(subject interface{}, c *content.Content) error {
	id, isRef, err := subjectKey(subject)
	if err != nil {
		return err
	}
	if c == nil {
		return nil
	}

	var fallback *content.Content
	if s.chain != nil {
		if fc, ok := s.chain.Resolve(subject); ok {
			fallback = fc
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.ownLocked(subject, id, isRef)
	if existing == nil {
		existing = fallback
	}
	s.setLocked(subject, id, isRef, content.Merge(existing, c))
	return nil
}

// LookupOwn returns the store-local content for subject, without chain
// fallback. A miss is nil, not an error.
func (s *Store) LookupOwn(subject interface{}) *content.Content {
	id, isRef, err := subjectKey(subject)
	if err != nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownLocked(subject, id, isRef)
}

// Lookup returns the content for subject, consulting the fallback
// chain when the store holds nothing locally.
func (s *Store) Lookup(subject interface{}) *content.Content {
	if c := s.LookupOwn(subject); c != nil {
		return c
	}
	if s.chain != nil {
		if c, ok := s.chain.Resolve(subject); ok {
			return c
		}
	}
	return nil
}

// Len returns the number of live associations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID) + len(s.byValue)
}

// subjectKey classifies a subject: reference kinds get an identity
// word, comparable values are keyed directly, everything else is
// rejected.
func subjectKey(subject interface{}) (uintptr, bool, error) {
	if subject == nil {
		return 0, false, errors.New(errors.ErrInvalidInput, "subject cannot be nil")
	}

	rv := reflect.ValueOf(subject)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return 0, false, errors.New(errors.ErrInvalidInput, "subject cannot be a nil reference")
		}
		return rv.Pointer(), true, nil
	default:
		if !rv.Comparable() {
			return 0, false, errors.Newf(errors.ErrInvalidInput,
				"subject of type %T is not comparable and cannot be used as a key", subject)
		}
		return 0, false, nil
	}
}

// armEviction sets a finalizer on pointer subjects that removes the
// entry once the pointee is reclaimed. Must be called with s.mu held,
// before the entry is visible to finalizers.
//
// SetFinalizer rejects pointers that are not the start of a heap
// allocation (globals, interior pointers); for those the association
// simply lives until process exit, which still holds no strong edge.
func (s *Store) armEviction(subject interface{}, id uintptr, gen uint64) {
	rv := reflect.ValueOf(subject)
	if rv.Kind() != reflect.Ptr {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log := logging.GetLogger("store")
			log.Debug().
				Interface("reason", r).
				Msg("Cannot arm eviction finalizer, entry will persist")
		}
	}()

	ft := reflect.FuncOf([]reflect.Type{rv.Type()}, nil, false)
	fin := reflect.MakeFunc(ft, func([]reflect.Value) []reflect.Value {
		s.evict(id, gen)
		return nil
	})
	runtime.SetFinalizer(subject, fin.Interface())
}

// evict drops the entry for id unless the identity has been reclaimed
// and reattached since the finalizer was armed.
func (s *Store) evict(id uintptr, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.byID[id]; ok && e.gen == gen {
		delete(s.byID, id)
	}
}
