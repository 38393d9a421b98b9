// Package variant groups source descriptors into named variants, validates them
// against required media types and orders them for presentation.
package variant

import (
	"github.com/anisan-cli/dvs/source"
	"github.com/samber/lo"
)

// Set is an ordered mapping from variant key to the sources of that variant.
// Every key maps to a non-empty list. Keys keep the order of their first appearance.
type Set struct {
	keys   []source.Key
	groups map[source.Key][]source.Descriptor
}

// Build groups sources by key, preserving source order inside each group.
func Build(sources []source.Descriptor) *Set {
	s := &Set{groups: make(map[source.Key][]source.Descriptor)}
	for _, d := range sources {
		if _, ok := s.groups[d.Key]; !ok {
			s.keys = append(s.keys, d.Key)
		}
		s.groups[d.Key] = append(s.groups[d.Key], d)
	}
	return s
}

// Len returns the number of variants.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the variant keys in set order.
func (s *Set) Keys() []source.Key {
	return append([]source.Key(nil), s.keys...)
}

// Has reports whether k names a variant of the set.
func (s *Set) Has(k source.Key) bool {
	_, ok := s.groups[k]
	return ok
}

// Get returns a copy of the sources of variant k.
func (s *Set) Get(k source.Key) ([]source.Descriptor, bool) {
	group, ok := s.groups[k]
	if !ok {
		return nil, false
	}
	return append([]source.Descriptor(nil), group...), true
}

// Sources returns every source of every variant, in set order.
func (s *Set) Sources() []source.Descriptor {
	return lo.FlatMap(s.keys, func(k source.Key, _ int) []source.Descriptor {
		return s.groups[k]
	})
}

// Other returns the key that is not k when the set holds exactly two variants.
func (s *Set) Other(k source.Key) (source.Key, bool) {
	if s.Len() != 2 {
		return "", false
	}
	return lo.Find(s.keys, func(candidate source.Key) bool {
		return candidate != k
	})
}

func (s *Set) clone() *Set {
	c := &Set{
		keys:   s.Keys(),
		groups: make(map[source.Key][]source.Descriptor, len(s.groups)),
	}
	for k, group := range s.groups {
		c.groups[k] = group
	}
	return c
}

func (s *Set) remove(k source.Key) {
	if _, ok := s.groups[k]; !ok {
		return
	}
	delete(s.groups, k)
	s.keys = lo.Without(s.keys, k)
}
