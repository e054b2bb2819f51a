package testutil

import (
	"context"

	"github.com/trezcool/ripoti/core/submission"
)

// FixtureFeed is a report.Feed serving a fixed record set.
type FixtureFeed struct {
	Records []map[string]interface{}
	Err     error
}

func (f *FixtureFeed) FetchComplianceRecords(ctx context.Context) ([]map[string]interface{}, error) {
	return f.Records, f.Err
}

// FakeLMS is a submission.LMS serving fixed queues.
type FakeLMS struct {
	Assignments []submission.Submission
	Quizzes     []submission.Submission
	Err         error
}

var _ submission.LMS = (*FakeLMS)(nil)

func (l *FakeLMS) AssignmentSubmissions(ctx context.Context) ([]submission.Submission, error) {
	return l.Assignments, l.Err
}

func (l *FakeLMS) QuizSubmissions(ctx context.Context) ([]submission.Submission, error) {
	return l.Quizzes, l.Err
}

// Record builds a raw compliance feed entry in the feed's loose shape.
// dueDate/submissionDate are epoch seconds; 0 means absent.
func Record(group, userID, firstName, lastName, activity, grade string, dueDate, submissionDate float64) map[string]interface{} {
	rec := map[string]interface{}{
		"groupname":    group,
		"userid":       userID,
		"firstname":    firstName,
		"lastname":     lastName,
		"activityname": activity,
	}
	if grade != "" {
		rec["grade"] = grade
	}
	if dueDate != 0 {
		rec["duedate"] = dueDate
	}
	if submissionDate != 0 {
		rec["submissiondate"] = submissionDate
	}
	return rec
}
