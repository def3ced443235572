package domain

// Activity describes one extracurricular club or team offered by the school.
type Activity struct {
	Description string
	Schedule    string
	// MaxParticipants is advisory only; signup never rejects on capacity.
	MaxParticipants int
	// Participants holds student emails in signup order, no duplicates.
	Participants []string
}

// IsRegistered reports whether email is currently on the participant list.
func (a Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
