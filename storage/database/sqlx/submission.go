package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/ripoti/core/submission"
)

type submissionRepository struct {
	db *sqlx.DB
}

var _ submission.Repository = (*submissionRepository)(nil)

func NewSubmissionRepository(db *sqlx.DB) submission.Repository {
	return &submissionRepository{db: db}
}

func (repo *submissionRepository) GetAllMeta(ctx context.Context) ([]submission.Meta, error) {
	metas := make([]submission.Meta, 0)
	err := repo.db.SelectContext(ctx, &metas,
		`SELECT id, submission_id, blocked, comment, created_at, updated_at
		 FROM submission_meta
		 ORDER BY submission_id`,
	)
	return metas, dbErr(err)
}

func (repo *submissionRepository) SetBlocked(ctx context.Context, submissionID int, blocked bool) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO submission_meta (submission_id, blocked) VALUES ($1, $2)
		 ON CONFLICT (submission_id)
		 DO UPDATE SET blocked = EXCLUDED.blocked, updated_at = now()`,
		submissionID, blocked,
	)
	return dbErr(err)
}

func (repo *submissionRepository) SaveComment(ctx context.Context, submissionID int, comment string) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO submission_meta (submission_id, comment) VALUES ($1, $2)
		 ON CONFLICT (submission_id)
		 DO UPDATE SET comment = EXCLUDED.comment, updated_at = now()`,
		submissionID, comment,
	)
	return dbErr(err)
}

func (repo *submissionRepository) DeleteComment(ctx context.Context, submissionID int) error {
	_, err := repo.db.ExecContext(ctx,
		`UPDATE submission_meta SET comment = NULL, updated_at = now()
		 WHERE submission_id = $1`,
		submissionID,
	)
	return dbErr(err)
}
