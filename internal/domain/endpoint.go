package domain

import (
	"errors"
	"sort"
)

var ErrEmptyEndpoint = errors.New("endpoint cannot be empty")

// Endpoint is an opaque device token addressed by the push transport.
type Endpoint struct {
	value string
}

func NewEndpoint(token string) (Endpoint, error) {
	if token == "" {
		return Endpoint{}, ErrEmptyEndpoint
	}

	return Endpoint{value: token}, nil
}

func (e Endpoint) String() string {
	return e.value
}

func (e Endpoint) Equals(other Endpoint) bool {
	return e.value == other.value
}

// EndpointSet holds endpoints deduplicated by value.
type EndpointSet map[Endpoint]struct{}

func NewEndpointSet(endpoints ...Endpoint) EndpointSet {
	s := make(EndpointSet, len(endpoints))
	s.AddAll(endpoints)

	return s
}

func (s EndpointSet) Add(e Endpoint) {
	if e.value == "" {
		return
	}

	s[e] = struct{}{}
}

func (s EndpointSet) AddAll(endpoints []Endpoint) {
	for _, e := range endpoints {
		s.Add(e)
	}
}

func (s EndpointSet) Contains(e Endpoint) bool {
	_, ok := s[e]

	return ok
}

func (s EndpointSet) Count() int {
	return len(s)
}

func (s EndpointSet) IsEmpty() bool {
	return len(s) == 0
}

// Slice returns the endpoints sorted by value.
func (s EndpointSet) Slice() []Endpoint {
	endpoints := make([]Endpoint, 0, len(s))
	for e := range s {
		endpoints = append(endpoints, e)
	}

	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].value < endpoints[j].value
	})

	return endpoints
}

func (s EndpointSet) Strings() []string {
	endpoints := s.Slice()

	tokens := make([]string, len(endpoints))
	for i, e := range endpoints {
		tokens[i] = e.value
	}

	return tokens
}
