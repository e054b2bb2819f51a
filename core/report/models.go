package report

import (
	"strings"

	"github.com/volatiletech/null/v8"
)

// Status is a learner's standing on one deliverable.
// The labels are what the UI and the CSV export display.
type Status string

const (
	StatusOnTime  Status = "On time"
	StatusLate    Status = "Late"
	StatusMissed  Status = "Missed"
	StatusPending Status = "Pending"
)

// RawRecord is one upstream feed entry correlating a learner, a deliverable
// and submission/grade facts, normalized to a fixed shape.
// It is valid iff GroupName, UserID and ActivityName are all non-empty.
type RawRecord struct {
	GroupName    string
	UserID       string
	FirstName    string
	LastName     string
	ActivityName string
	ActivityType string
	Grade        string // raw decimal string, "" when no grade yet
	DueDate      null.Time
	SubmittedAt  null.Time
}

func (r RawRecord) valid() bool {
	return r.GroupName != "" && r.UserID != "" && r.ActivityName != ""
}

// displayName derives the learner's display name.
func (r RawRecord) displayName() string {
	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	if name == "" {
		return "Unknown User"
	}
	return name
}

type Deliverable struct {
	Title        string    `json:"title"`
	Status       Status    `json:"status"`
	Score        null.Int  `json:"score"` // rounded percentage; 0 is a present score
	SubmittedAt  null.Time `json:"submittedAt"`
	LateDays     int       `json:"lateDays"` // meaningful only when Status == Late
	ActivityType string    `json:"activityType"`
	DueDate      null.Time `json:"dueDate"`
}

type Stats struct {
	Done    int `json:"done"`
	Late    int `json:"late"`
	Missed  int `json:"missed"`
	Strikes int `json:"strikes"`
}

// LearnerRoster is one learner's full set of deliverable outcomes within a
// cohort. Every learner in a cohort carries an entry for every deliverable
// title known anywhere in that cohort, in the same (lexicographic) order.
type LearnerRoster struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Cohort       string        `json:"cohort"`
	Deliverables []Deliverable `json:"deliverables"`
	Stats        Stats         `json:"stats"`
}

// learnerKey identifies a learner within a cohort. The upstream feed may
// reuse numeric ids across unrelated records, hence the composite key.
type learnerKey struct {
	ID        string
	FirstName string
	LastName  string
}
