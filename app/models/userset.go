package models

import (
	"encoding/json"
	"sort"
)

// UserSet is a set of user ids. It serializes as a sorted JSON array.
type UserSet map[string]struct{}

// NewUserSet builds a set from ids, collapsing duplicates.
func NewUserSet(ids ...string) UserSet {
	s := make(UserSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set has no members.
func (s UserSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s UserSet) Len() int { return len(s) }

// Toggle flips the membership of id and reports whether id is a member
// afterwards.
func (s UserSet) Toggle(id string) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// Members returns the ids in ascending order.
func (s UserSet) Members() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (s UserSet) Clone() UserSet {
	c := make(UserSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

func (s UserSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Members())
}

func (s *UserSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewUserSet(ids...)
	return nil
}
