package models

// Status is the three-state approval flag shared by all application records.
// Every record starts at pending; transitions are explicit (approve/reject or
// a partial update that sets status) and are never guarded by a transition
// table, so re-approving an approved record is accepted silently.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
