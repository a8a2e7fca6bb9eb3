package lesson

import (
	"fmt"
	"io"
	"strconv"
)

// Registry is the fixed, ordered collection of lesson descriptors. It is
// built once at startup and never mutated; declaration order is the
// canonical listing order.
type Registry struct {
	lessons []Descriptor
}

// NewRegistry builds a registry from descriptors in the given order. It
// rejects duplicate numbers and duplicate slugs so an authoring mistake in
// the catalog surfaces the first time the registry is constructed.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	byNumber := make(map[int]string, len(descs))
	bySlug := make(map[string]int, len(descs))
	for _, d := range descs {
		if d.Number <= 0 {
			return nil, fmt.Errorf("lesson %q: number must be positive, got %d", d.Slug, d.Number)
		}
		if d.Slug == "" {
			return nil, fmt.Errorf("lesson %d: empty slug", d.Number)
		}
		if d.Runner == nil {
			return nil, fmt.Errorf("lesson %q: nil runner", d.Slug)
		}
		if prev, ok := byNumber[d.Number]; ok {
			return nil, fmt.Errorf("duplicate lesson number %d (%q and %q)", d.Number, prev, d.Slug)
		}
		if prev, ok := bySlug[d.Slug]; ok {
			return nil, fmt.Errorf("duplicate lesson slug %q (numbers %d and %d)", d.Slug, prev, d.Number)
		}
		byNumber[d.Number] = d.Slug
		bySlug[d.Slug] = d.Number
	}

	lessons := make([]Descriptor, len(descs))
	copy(lessons, descs)
	return &Registry{lessons: lessons}, nil
}

// Lessons returns the descriptors in registration order. The returned slice
// is a copy so callers cannot mutate registry state.
func (r *Registry) Lessons() []Descriptor {
	out := make([]Descriptor, len(r.lessons))
	copy(out, r.lessons)
	return out
}

// Len returns the number of registered lessons.
func (r *Registry) Len() int { return len(r.lessons) }

// Resolve maps a selector to a descriptor. The selector is interpreted as a
// number first: a non-negative strict decimal (no sign, leading zeros
// allowed, so "01" resolves number 1). Only when numeric parsing fails, or
// no lesson carries that number, is the selector matched against slugs
// (exact, case-sensitive). Both searches are first-match in registration
// order. A selector matching neither yields *NotFoundError.
func (r *Registry) Resolve(selector string) (*Descriptor, error) {
	if n, err := strconv.ParseUint(selector, 10, 64); err == nil {
		for i := range r.lessons {
			if uint64(r.lessons[i].Number) == n {
				d := r.lessons[i]
				return &d, nil
			}
		}
	}
	for i := range r.lessons {
		if r.lessons[i].Slug == selector {
			d := r.lessons[i]
			return &d, nil
		}
	}
	return nil, &NotFoundError{Selector: selector}
}

// List writes one line per lesson in registration order: the zero-padded
// number, the slug left-justified in a 24-column field, and the title.
func (r *Registry) List(w io.Writer) {
	for _, d := range r.lessons {
		fmt.Fprintf(w, "%02d  %-24s %s\n", d.Number, d.Slug, d.Title)
	}
}
