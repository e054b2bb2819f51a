package sqlxrepos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/ripoti/core/autograde"
)

type autogradeRepository struct {
	db *sqlx.DB
}

var _ autograde.Repository = (*autogradeRepository)(nil)

func NewAutogradeRepository(db *sqlx.DB) autograde.Repository {
	return &autogradeRepository{db: db}
}

func (repo *autogradeRepository) CreateLog(ctx context.Context, lg autograde.Log) (autograde.Log, error) {
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO autograde_log (
			submission_id, user_id, submission_status, course_id, course_name,
			assignment_id, assignment_name, cmid, submitted_at,
			autograde_status, autograde_status_details, output
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		lg.SubmissionID, lg.UserID, lg.SubmissionStatus, lg.CourseID, lg.CourseName,
		lg.AssignmentID, lg.AssignmentName, lg.CMID, lg.SubmittedAt,
		lg.Status, lg.StatusDetails, lg.Output,
	).Scan(&lg.ID, &lg.CreatedAt)
	return lg, dbErr(err)
}

func (repo *autogradeRepository) FilterLogs(ctx context.Context, filter autograde.QueryFilter) ([]autograde.Log, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	addClause := func(column, value string) {
		if value != "" {
			args = append(args, value)
			where = append(where, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	addClause("course_name", filter.Course)
	addClause("assignment_name", filter.Assignment)
	addClause("autograde_status", filter.Status)

	query := `SELECT id, created_at, submission_id, user_id, submission_status,
			course_id, course_name, assignment_id, assignment_name, cmid,
			submitted_at, autograde_status, autograde_status_details, output
		FROM autograde_log`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	logs := make([]autograde.Log, 0)
	err := repo.db.SelectContext(ctx, &logs, query, args...)
	return logs, dbErr(err)
}
