package report

import (
	"sort"

	"github.com/volatiletech/null/v8"
)

// Aggregate builds one roster per learner in the given cohort from the full
// normalized record set. The deliverable order is the lexicographically
// sorted set of activity titles seen anywhere in the cohort, so columns line
// up across learners for display and export. Learners come out in the order
// they are first encountered in the feed.
//
// Aggregation is a pure derivation: the same input always yields the same
// output, and an unknown or empty cohort yields an empty slice.
func Aggregate(records []RawRecord, cohortID string) []LearnerRoster {
	var cohort []RawRecord
	for _, rec := range records {
		if rec.GroupName == cohortID {
			cohort = append(cohort, rec)
		}
	}
	if len(cohort) == 0 {
		return []LearnerRoster{}
	}

	// fixed deliverable order + the due instant established per title
	// (first valid due date encountered wins)
	titleSet := make(map[string]struct{})
	titleDue := make(map[string]null.Time)
	for _, rec := range cohort {
		titleSet[rec.ActivityName] = struct{}{}
		if _, ok := titleDue[rec.ActivityName]; !ok && rec.DueDate.Valid {
			titleDue[rec.ActivityName] = rec.DueDate
		}
	}
	titles := make([]string, 0, len(titleSet))
	for title := range titleSet {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	// learners in first-seen order; first record per (learner, title) wins
	var keys []learnerKey
	byLearner := make(map[learnerKey]map[string]*RawRecord)
	for i := range cohort {
		rec := &cohort[i]
		key := learnerKey{ID: rec.UserID, FirstName: rec.FirstName, LastName: rec.LastName}
		matches, ok := byLearner[key]
		if !ok {
			matches = make(map[string]*RawRecord)
			byLearner[key] = matches
			keys = append(keys, key)
		}
		if _, ok := matches[rec.ActivityName]; !ok {
			matches[rec.ActivityName] = rec
		}
	}

	rosters := make([]LearnerRoster, 0, len(keys))
	for _, key := range keys {
		matches := byLearner[key]

		roster := LearnerRoster{
			ID:           key.ID,
			Name:         RawRecord{FirstName: key.FirstName, LastName: key.LastName}.displayName(),
			Cohort:       cohortID,
			Deliverables: make([]Deliverable, 0, len(titles)),
		}
		for _, title := range titles {
			d := resolveDeliverable(title, titleDue[title], matches[title])
			switch d.Status {
			case StatusOnTime:
				roster.Stats.Done++
			case StatusLate:
				roster.Stats.Late++
			case StatusMissed:
				roster.Stats.Missed++
			}
			roster.Deliverables = append(roster.Deliverables, d)
		}
		roster.Stats.Strikes = roster.Stats.Late + roster.Stats.Missed
		rosters = append(rosters, roster)
	}
	return rosters
}

// Cohorts lists the distinct cohort ids present in the record set, sorted.
func Cohorts(records []RawRecord) []string {
	seen := make(map[string]struct{})
	cohorts := make([]string, 0)
	for _, rec := range records {
		if _, ok := seen[rec.GroupName]; !ok {
			seen[rec.GroupName] = struct{}{}
			cohorts = append(cohorts, rec.GroupName)
		}
	}
	sort.Strings(cohorts)
	return cohorts
}
