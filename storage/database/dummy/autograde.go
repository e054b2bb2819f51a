package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/trezcool/ripoti/core/autograde"
)

var logPKCount int

type autogradeRepository struct {
	db *autogradeLogTable
}

var _ autograde.Repository = (*autogradeRepository)(nil) // interface compliance check

func NewAutogradeRepository(db *DB) autograde.Repository {
	return &autogradeRepository{db: db.autogradeLog}
}

func (repo *autogradeRepository) CreateLog(ctx context.Context, lg autograde.Log) (autograde.Log, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	logPKCount++
	lg.ID = logPKCount
	if lg.CreatedAt.IsZero() {
		lg.CreatedAt = time.Now().UTC()
	}
	repo.db.table[lg.ID] = &lg
	return lg, nil
}

func (repo *autogradeRepository) FilterLogs(ctx context.Context, filter autograde.QueryFilter) ([]autograde.Log, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	logs := make([]autograde.Log, 0, len(repo.db.table))
	for _, lg := range repo.db.table {
		if filter.Course != "" && lg.CourseName != filter.Course {
			continue
		}
		if filter.Assignment != "" && lg.AssignmentName != filter.Assignment {
			continue
		}
		if filter.Status != "" && lg.Status != filter.Status {
			continue
		}
		logs = append(logs, *lg)
	}
	sort.Slice(logs, func(i, j int) bool {
		if logs[i].CreatedAt.Equal(logs[j].CreatedAt) {
			return logs[i].ID > logs[j].ID
		}
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return logs, nil
}
