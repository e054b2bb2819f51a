package submission

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core"
)

var ErrNotFound = errors.New("submission metadata not found")

// maxCommentLen caps stored review comments; the column is TEXT but the UI
// renders comments inline in the queue.
const maxCommentLen = 2000

var errCommentTooLong = "must be 2000 characters or fewer"

type (
	// LMS lists work awaiting manual grading.
	LMS interface {
		AssignmentSubmissions(ctx context.Context) ([]Submission, error)
		QuizSubmissions(ctx context.Context) ([]Submission, error)
	}

	Repository interface {
		GetAllMeta(ctx context.Context) ([]Meta, error)
		// SetBlocked upserts the blocked flag for a submission.
		SetBlocked(ctx context.Context, submissionID int, blocked bool) error
		// SaveComment upserts a submission's comment.
		SaveComment(ctx context.Context, submissionID int, comment string) error
		DeleteComment(ctx context.Context, submissionID int) error
	}

	Service struct {
		lms  LMS
		repo Repository
	}
)

func NewService(lms LMS, repo Repository) *Service {
	return &Service{lms: lms, repo: repo}
}

// Queue returns all ungraded submissions (assignments first, then quizzes),
// each enriched with its local review metadata.
func (svc *Service) Queue(ctx context.Context) ([]Submission, error) {
	assignments, err := svc.lms.AssignmentSubmissions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching assignment submissions")
	}
	quizzes, err := svc.lms.QuizSubmissions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching quiz submissions")
	}

	metas, err := svc.repo.GetAllMeta(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching submission metadata")
	}
	metaByID := make(map[int]Meta, len(metas))
	for _, m := range metas {
		metaByID[m.SubmissionID] = m
	}

	queue := make([]Submission, 0, len(assignments)+len(quizzes))
	for _, sub := range append(assignments, quizzes...) {
		if meta, ok := metaByID[sub.ID]; ok {
			sub.Blocked = meta.Blocked
			sub.Comment = meta.Comment.String
		}
		queue = append(queue, sub)
	}
	return queue, nil
}

func (svc *Service) SetBlocked(ctx context.Context, submissionID int, blocked bool) error {
	return svc.repo.SetBlocked(ctx, submissionID, blocked)
}

// SaveComment persists a submission's comment; an empty comment deletes the
// stored one instead.
func (svc *Service) SaveComment(ctx context.Context, submissionID int, comment string) error {
	comment = core.CleanString(comment)
	if comment == "" {
		return svc.repo.DeleteComment(ctx, submissionID)
	}
	if len(comment) > maxCommentLen {
		return core.NewValidationError(nil, core.FieldError{Field: "comment", Error: errCommentTooLong})
	}
	return svc.repo.SaveComment(ctx, submissionID, comment)
}

func (svc *Service) DeleteComment(ctx context.Context, submissionID int) error {
	return svc.repo.DeleteComment(ctx, submissionID)
}
