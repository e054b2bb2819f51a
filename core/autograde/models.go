package autograde

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Log is one autograde worker run against a submission.
type Log struct {
	ID               int         `db:"id" json:"id"`
	CreatedAt        time.Time   `db:"created_at" json:"createdAt"`
	SubmissionID     int         `db:"submission_id" json:"submissionId"`
	UserID           int         `db:"user_id" json:"userId"`
	SubmissionStatus string      `db:"submission_status" json:"submissionStatus"`
	CourseID         int         `db:"course_id" json:"courseId"`
	CourseName       string      `db:"course_name" json:"courseName"`
	AssignmentID     int         `db:"assignment_id" json:"assignmentId"`
	AssignmentName   string      `db:"assignment_name" json:"assignmentName"`
	CMID             int         `db:"cmid" json:"cmid"`
	SubmittedAt      null.Time   `db:"submitted_at" json:"submittedAt"`
	Status           string      `db:"autograde_status" json:"status"`
	StatusDetails    null.String `db:"autograde_status_details" json:"statusDetails"`
	Output           null.String `db:"output" json:"output"`
}

// QueryFilter applies AND semantics on its non-empty fields.
type QueryFilter struct {
	Course     string
	Assignment string
	Status     string
}

func (f QueryFilter) IsEmpty() bool {
	return f.Course == "" && f.Assignment == "" && f.Status == ""
}
