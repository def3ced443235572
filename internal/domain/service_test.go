package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activities/internal/catalog"
	"example.com/activities/internal/domain"
)

func newService(t *testing.T) *domain.Service {
	t.Helper()
	return domain.NewService(catalog.NewMemory(map[string]domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu"},
		},
		"Debate Club": {
			Description:     "Develop argumentation skills",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
		},
	}))
}

func TestSignupThenDuplicateFails(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	require.NoError(t, service.Signup(ctx, "Chess Club", "newstudent@mergington.edu"))

	err := service.Signup(ctx, "Chess Club", "newstudent@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	activities, err := service.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities["Chess Club"].Participants, 2, "count must increase by exactly 1 overall")
}

func TestSignupUnregisterRoundTrip(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	before, err := service.ListActivities(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Signup(ctx, "Chess Club", "fresh@mergington.edu"))
	require.NoError(t, service.Unregister(ctx, "Chess Club", "fresh@mergington.edu"))

	after, err := service.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, before["Chess Club"].Participants, after["Chess Club"].Participants)
}

func TestUnknownActivityRejected(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	require.ErrorIs(t, service.Signup(ctx, "NonExistent Club", "x@y.edu"), domain.ErrActivityNotFound)
	require.ErrorIs(t, service.Unregister(ctx, "NonExistent Club", "x@y.edu"), domain.ErrActivityNotFound)

	activities, err := service.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 2)
}

func TestUnregisterWithoutSignupFails(t *testing.T) {
	service := newService(t)

	err := service.Unregister(context.Background(), "Debate Club", "never@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestListingReflectsMutations(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	require.NoError(t, service.Signup(ctx, "Debate Club", "speaker@mergington.edu"))

	activities, err := service.ListActivities(ctx)
	require.NoError(t, err)
	require.Contains(t, activities["Debate Club"].Participants, "speaker@mergington.edu")

	require.NoError(t, service.Unregister(ctx, "Debate Club", "speaker@mergington.edu"))

	activities, err = service.ListActivities(ctx)
	require.NoError(t, err)
	require.NotContains(t, activities["Debate Club"].Participants, "speaker@mergington.edu")
}

// MaxParticipants is stored for display but never checked on signup. Likely a
// product defect; this pins the current behavior so any future cap shows up
// as a deliberate change.
func TestSignupIgnoresMaxParticipants(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	require.NoError(t, service.Signup(ctx, "Chess Club", "second@mergington.edu"))
	require.NoError(t, service.Signup(ctx, "Chess Club", "overflow@mergington.edu"))

	activities, err := service.ListActivities(ctx)
	require.NoError(t, err)
	chess := activities["Chess Club"]
	require.Greater(t, len(chess.Participants), chess.MaxParticipants)
}
