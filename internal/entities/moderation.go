package entities

// ModerationStatus is the lifecycle state controlling public visibility of
// an organization or event.
type ModerationStatus string

// Moderation statuses.
const (
	ModerationNotSubmitted ModerationStatus = "not_submitted"
	ModerationPending      ModerationStatus = "pending"
	ModerationApproved     ModerationStatus = "approved"
	ModerationRejected     ModerationStatus = "rejected"
)

// moderationTransitions: not_submitted → pending → {approved, rejected},
// rejected → pending (resubmit). Approved is terminal.
var moderationTransitions = map[ModerationStatus][]ModerationStatus{
	ModerationNotSubmitted: {ModerationPending},
	ModerationPending:      {ModerationApproved, ModerationRejected},
	ModerationRejected:     {ModerationPending},
	ModerationApproved:     nil,
}

// CanTransitionTo reports whether the moderation state machine allows
// moving from s to next.
func (s ModerationStatus) CanTransitionTo(next ModerationStatus) bool {
	for _, allowed := range moderationTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CanResubmit reports whether the entity may be sent to moderation again.
func (s ModerationStatus) CanResubmit() bool {
	return s.CanTransitionTo(ModerationPending)
}
