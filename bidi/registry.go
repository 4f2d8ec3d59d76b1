package bidi

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Registry publishes at most one converter per (A, B, tag) triple.
//
// Lookups are typed: a converter registered under one tag can only be
// retrieved as a *Converter of that tag, so asking for the wrong tag is a
// type mismatch at the call site rather than a runtime branch. Register is
// meant to be called from package initialization, where a conflicting
// registration should stop the program (see MustRegister).
type Registry struct {
	mu      sync.RWMutex
	entries map[registryKey]registered
}

type registryKey struct {
	a, b, tag reflect.Type
}

type registered struct {
	name      string
	converter any
}

// Entry describes one registered converter.
type Entry struct {
	A    string
	B    string
	Tag  string
	Name string
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]registered)}
}

func keyOf[T any, A, B cmp.Ordered]() registryKey {
	return registryKey{
		a:   reflect.TypeFor[A](),
		b:   reflect.TypeFor[B](),
		tag: reflect.TypeFor[T](),
	}
}

// Register publishes c under its (A, B, T) triple.
func Register[T any, A, B cmp.Ordered](r *Registry, c *Converter[T, A, B]) error {
	if c == nil {
		return ErrUnbuilt
	}

	key := keyOf[T, A, B]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[registryKey]registered)
	}

	if prev, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %s conflicts with %s", ErrAlreadyRegistered, c.Name(), prev.name)
	}

	r.entries[key] = registered{name: c.Name(), converter: c}

	return nil
}

func MustRegister[T any, A, B cmp.Ordered](r *Registry, c *Converter[T, A, B]) *Converter[T, A, B] {
	if err := Register(r, c); err != nil {
		panic(err)
	}

	return c
}

// Declare builds a converter and registers it in one step.
func Declare[T any, A, B cmp.Ordered](r *Registry, da Domain[A], db Domain[B], rules []Rule[A, B]) (*Converter[T, A, B], error) {
	c, err := Build[T](da, db, rules)
	if err != nil {
		return nil, err
	}

	if err := Register(r, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Lookup returns the converter registered for (A, B, T).
//
// A tag nobody registered for the pair is an ordinary miss: (nil, false) at
// run time. Wrong-tag use is rejected at compile time only where the
// converter is held as a typed *Converter[T, A, B], such as the package
// variables gen emits. Prefer those variables and use Lookup for discovery.
func Lookup[T any, A, B cmp.Ordered](r *Registry) (*Converter[T, A, B], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[keyOf[T, A, B]()]
	if !ok {
		return nil, false
	}

	c, ok := entry.converter.(*Converter[T, A, B])

	return c, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Entries returns a snapshot of the registered converters sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for key, reg := range r.entries {
		entries = append(entries, Entry{
			A:    key.a.String(),
			B:    key.b.String(),
			Tag:  key.tag.String(),
			Name: reg.name,
		})
	}

	slices.SortFunc(entries, func(x, y Entry) int {
		return cmp.Or(cmp.Compare(x.Name, y.Name), cmp.Compare(x.Tag, y.Tag))
	})

	return entries
}
