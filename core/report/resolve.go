package report

import (
	"math"
	"strconv"

	"github.com/volatiletech/null/v8"
)

// resolveDeliverable decides a learner's standing on one deliverable, given
// the learner's matching raw record (nil when the learner has no record for
// the title) and the due instant established for the title across the
// cohort. A record carrying its own due date (e.g. an extension) overrides
// the title-level one.
//
// Evaluated in order:
//  1. no due date known -> Pending (a submission instant is still exposed);
//     never counted toward done/late/missed.
//  2. due date known but no record or no submission -> Missed.
//  3. submission <= due -> On time; otherwise Late with lateDays rounded up
//     to whole calendar days.
func resolveDeliverable(title string, titleDue null.Time, rec *RawRecord) Deliverable {
	due := titleDue
	if rec != nil && rec.DueDate.Valid {
		due = rec.DueDate
	}

	d := Deliverable{
		Title:        title,
		ActivityType: "unknown",
		DueDate:      due,
	}
	if rec != nil {
		d.ActivityType = rec.ActivityType
		d.SubmittedAt = rec.SubmittedAt
		d.Score = parseScore(rec.Grade)
	}

	if !due.Valid {
		d.Status = StatusPending
		return d
	}
	if rec == nil || !rec.SubmittedAt.Valid {
		d.Status = StatusMissed
		return d
	}

	if !rec.SubmittedAt.Time.After(due.Time) {
		d.Status = StatusOnTime
		return d
	}

	d.Status = StatusLate
	d.LateDays = int(math.Ceil(rec.SubmittedAt.Time.Sub(due.Time).Hours() / 24))
	return d
}

// parseScore parses a raw grade into a rounded integer percentage.
// A grade of exactly 0 is a present, valid score; only an unparseable or
// non-finite grade is absent.
func parseScore(grade string) null.Int {
	if grade == "" {
		return null.Int{}
	}
	f, err := strconv.ParseFloat(grade, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return null.Int{}
	}
	return null.IntFrom(int(math.Round(f)))
}
