package domain

import "sort"

// UserSet is an unordered set of user identifiers.
type UserSet map[UserID]struct{}

func NewUserSet(ids ...UserID) UserSet {
	s := make(UserSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}

	return s
}

func (s UserSet) Add(id UserID) {
	if id.IsZero() {
		return
	}

	s[id] = struct{}{}
}

func (s UserSet) Remove(id UserID) {
	delete(s, id)
}

func (s UserSet) Contains(id UserID) bool {
	_, ok := s[id]

	return ok
}

func (s UserSet) Count() int {
	return len(s)
}

func (s UserSet) IsEmpty() bool {
	return len(s) == 0
}

// Slice returns the members sorted by value.
func (s UserSet) Slice() []UserID {
	ids := make([]UserID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].value < ids[j].value
	})

	return ids
}
