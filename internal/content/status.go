package content

import "time"

// ResolveStatus computes the status of it as of now. Drafts stay drafts;
// windowed types (banner, notice) are scheduled before StartDate, ended after
// EndDate and active in between, both bounds inclusive. Other types report
// their stored status.
func ResolveStatus(it *Item, now time.Time) Status {
	if it.Status == StatusDraft {
		return StatusDraft
	}
	if !it.Type.Windowed() {
		return it.Status
	}

	switch {
	case it.StartDate != nil && now.Before(*it.StartDate):
		return StatusScheduled
	case it.EndDate != nil && now.After(*it.EndDate):
		return StatusEnded
	default:
		return StatusActive
	}
}
