package submission

import (
	"time"

	"github.com/volatiletech/null/v8"
)

const (
	TypeAssignment = "assignment"
	TypeQuiz       = "quiz"
)

// Submission is one piece of ungraded work awaiting staff review.
// Blocked and Comment are local review metadata merged in from storage;
// everything else comes from the LMS.
type Submission struct {
	ID             int       `json:"id"`
	CourseID       int       `json:"courseId"`
	CourseName     string    `json:"courseName"`
	CourseModuleID int       `json:"courseModuleId"`
	Name           string    `json:"name"`
	UserID         int       `json:"userId"`
	AttemptNumber  int       `json:"attemptNumber"`
	SubmittedAt    time.Time `json:"submittedAt"`
	Status         string    `json:"status"`
	Type           string    `json:"type"` // assignment | quiz
	CourseURL      string    `json:"courseUrl"`
	ModuleURL      string    `json:"moduleUrl"`
	GradingURL     string    `json:"gradingUrl"`
	Blocked        bool      `json:"blocked"`
	Comment        string    `json:"comment"`
}

// Meta is the locally persisted review state for one submission.
type Meta struct {
	ID           int         `db:"id" json:"id"`
	SubmissionID int         `db:"submission_id" json:"submissionId"`
	Blocked      bool        `db:"blocked" json:"blocked"`
	Comment      null.String `db:"comment" json:"comment"`
	CreatedAt    time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updatedAt"`
}
