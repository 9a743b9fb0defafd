package domain

import (
	"errors"
	"fmt"
)

type MutationKind string

const (
	MutationCreated MutationKind = "created"
	MutationUpdated MutationKind = "updated"
	MutationDeleted MutationKind = "deleted"
)

var (
	ErrInvalidMutationKind = errors.New("invalid mutation kind")
	ErrMissingSnapshot     = errors.New("event snapshot is required")
)

func NewMutationKind(k string) (MutationKind, error) {
	switch k {
	case string(MutationCreated), string(MutationUpdated), string(MutationDeleted):
		return MutationKind(k), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMutationKind, k)
	}
}

// EventSnapshot is the image of an event document at mutation time.
type EventSnapshot struct {
	ID         EventID
	CalendarID CalendarID
	Title      string
	OwnerID    UserID
}

// Mutation is one of Created, Updated or Deleted.
type Mutation interface {
	Kind() MutationKind
	// Subject is the image notifications are built from. For updates this is
	// the post-mutation image.
	Subject() EventSnapshot
	isMutation()
}

type Created struct {
	After EventSnapshot
}

type Updated struct {
	Before EventSnapshot
	After  EventSnapshot
}

type Deleted struct {
	Before EventSnapshot
}

func (Created) Kind() MutationKind { return MutationCreated }
func (Updated) Kind() MutationKind { return MutationUpdated }
func (Deleted) Kind() MutationKind { return MutationDeleted }

func (m Created) Subject() EventSnapshot { return m.After }
func (m Updated) Subject() EventSnapshot { return m.After }
func (m Deleted) Subject() EventSnapshot { return m.Before }

func (Created) isMutation() {}
func (Updated) isMutation() {}
func (Deleted) isMutation() {}

// NewMutation builds the variant for kind from the images the store delivered.
// before is ignored for creates, after is ignored for deletes.
func NewMutation(kind MutationKind, before, after *EventSnapshot) (Mutation, error) {
	switch kind {
	case MutationCreated:
		if after == nil {
			return nil, fmt.Errorf("%w: after image for %s", ErrMissingSnapshot, kind)
		}

		return Created{After: *after}, nil
	case MutationUpdated:
		if after == nil {
			return nil, fmt.Errorf("%w: after image for %s", ErrMissingSnapshot, kind)
		}

		if before == nil {
			return Updated{Before: *after, After: *after}, nil
		}

		return Updated{Before: *before, After: *after}, nil
	case MutationDeleted:
		if before == nil {
			return nil, fmt.Errorf("%w: before image for %s", ErrMissingSnapshot, kind)
		}

		return Deleted{Before: *before}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMutationKind, kind)
	}
}
