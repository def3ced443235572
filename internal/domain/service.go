// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"

	"example.com/activities/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when a student signs up twice for the same activity.
	ErrAlreadyRegistered = errors.New("student already signed up for activity")
	// ErrNotRegistered is returned when unregistering a student who never signed up.
	ErrNotRegistered = errors.New("student not signed up for activity")
)

// Catalog captures the activity store operations the service depends on.
//
// AddParticipant and RemoveParticipant perform their precondition check and
// mutation atomically per activity, so a failed call never leaves a partial
// write behind and concurrent duplicate signups resolve to a single success.
// Both return the participant count after the mutation.
type Catalog interface {
	Get(ctx context.Context, name string) (*Activity, error)
	All(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, name, email string) (int, error)
	RemoveParticipant(ctx context.Context, name, email string) (int, error)
}

// Service orchestrates activity registration workflows.
type Service struct {
	catalog Catalog
}

// NewService constructs a Service around the given catalog.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Signup registers email for the named activity. The activity must exist and
// the student must not already be on its participant list.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	count, err := s.catalog.AddParticipant(ctx, activity, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}
	observability.RecordSignup(activity, count)
	return nil
}

// Unregister removes email from the named activity. The activity must exist
// and the student must currently be on its participant list.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	count, err := s.catalog.RemoveParticipant(ctx, activity, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}
	observability.RecordUnregister(activity, count)
	return nil
}

// ListActivities returns a snapshot of every activity and its current
// participant list.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.catalog.All(ctx)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	default:
		return "internal"
	}
}
