package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/ripoti/core/submission"
)

var metaPKCount int

type submissionRepository struct {
	db *submissionMetaTable
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submissionMeta}
}

func (repo *submissionRepository) GetAllMeta(ctx context.Context) ([]submission.Meta, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	metas := make([]submission.Meta, 0, len(repo.db.table))
	for _, m := range repo.db.table {
		metas = append(metas, *m)
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].SubmissionID < metas[j].SubmissionID })
	return metas, nil
}

func (repo *submissionRepository) upsert(submissionID int, update func(*submission.Meta)) {
	now := time.Now().UTC()
	meta, ok := repo.db.table[submissionID]
	if !ok {
		metaPKCount++
		meta = &submission.Meta{
			ID:           metaPKCount,
			SubmissionID: submissionID,
			CreatedAt:    now,
		}
		repo.db.table[submissionID] = meta
	}
	update(meta)
	meta.UpdatedAt = now
}

func (repo *submissionRepository) SetBlocked(ctx context.Context, submissionID int, blocked bool) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.upsert(submissionID, func(m *submission.Meta) { m.Blocked = blocked })
	return nil
}

func (repo *submissionRepository) SaveComment(ctx context.Context, submissionID int, comment string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.upsert(submissionID, func(m *submission.Meta) { m.Comment = null.StringFrom(comment) })
	return nil
}

func (repo *submissionRepository) DeleteComment(ctx context.Context, submissionID int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if meta, ok := repo.db.table[submissionID]; ok {
		meta.Comment = null.String{}
		meta.UpdatedAt = time.Now().UTC()
	}
	return nil
}
