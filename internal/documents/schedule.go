package documents

import "time"

// DueSoonWindow is how far ahead a due date still counts as "due soon".
const DueSoonWindow = 14 * 24 * time.Hour

// DueStatus classifies a due date relative to now.
type DueStatus string

const (
	DueStatusNone    DueStatus = ""
	DueStatusOverdue DueStatus = "overdue"
	DueStatusDueSoon DueStatus = "due-soon"
)

// NextDueDate computes the next due date for a document given its anchor
// timestamp. An explicit override always wins. No frequency, or a one-time
// frequency, yields no due date. Month and year arithmetic use time.AddDate,
// so end-of-month anchors normalize forward (Jan 31 + 1 month lands in early
// March).
func NextDueDate(anchor time.Time, freq Frequency, override *time.Time) (time.Time, bool) {
	if override != nil {
		return *override, true
	}
	switch freq {
	case FrequencyDaily:
		return anchor.AddDate(0, 0, 1), true
	case FrequencyMonthly:
		return anchor.AddDate(0, 1, 0), true
	case FrequencyQuarterly:
		return anchor.AddDate(0, 3, 0), true
	case FrequencyYearly:
		return anchor.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// ClassifyDueDate returns overdue for due dates strictly before now and
// due-soon for due dates within the next 14 days inclusive of now.
func ClassifyDueDate(due, now time.Time) DueStatus {
	if due.Before(now) {
		return DueStatusOverdue
	}
	if !due.After(now.Add(DueSoonWindow)) {
		return DueStatusDueSoon
	}
	return DueStatusNone
}

// dueDate resolves a document's next due date.
func (d Document) dueDate() (time.Time, bool) {
	return NextDueDate(d.AnchorTime(), d.Frequency, d.DueDate)
}
