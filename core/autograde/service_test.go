package autograde_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ripoti/core/autograde"
	dummydb "github.com/trezcool/ripoti/storage/database/dummy"
)

func seedTestLogs(t *testing.T, repo autograde.Repository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2021, 3, 1, 8, 0, 0, 0, time.UTC)

	logs := []autograde.Log{
		{SubmissionID: 11, CourseName: "Python 101", AssignmentName: "Exercise 1", Status: "success", CreatedAt: base},
		{SubmissionID: 12, CourseName: "Python 101", AssignmentName: "Exercise 2", Status: "failed", CreatedAt: base.Add(time.Hour)},
		{SubmissionID: 13, CourseName: "Databases", AssignmentName: "Exercise 1", Status: "success", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, lg := range logs {
		_, err := repo.CreateLog(ctx, lg)
		require.NoError(t, err)
	}
}

func TestService_Filter(t *testing.T) {
	db, err := dummydb.Open()
	require.NoError(t, err)
	repo := dummydb.NewAutogradeRepository(db)
	seedTestLogs(t, repo)
	svc := autograde.NewService(repo)
	ctx := context.Background()

	t.Run("empty filter returns everything newest first", func(t *testing.T) {
		logs, err := svc.Filter(ctx, autograde.QueryFilter{})
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, 13, logs[0].SubmissionID)
		assert.Equal(t, 11, logs[2].SubmissionID)
	})

	t.Run("by course", func(t *testing.T) {
		logs, err := svc.Filter(ctx, autograde.QueryFilter{Course: "Python 101"})
		require.NoError(t, err)
		require.Len(t, logs, 2)
		for _, lg := range logs {
			assert.Equal(t, "Python 101", lg.CourseName)
		}
	})

	t.Run("fields combine with AND", func(t *testing.T) {
		logs, err := svc.Filter(ctx, autograde.QueryFilter{Course: "Python 101", Assignment: "Exercise 1", Status: "success"})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, 11, logs[0].SubmissionID)
	})

	t.Run("inputs are cleaned", func(t *testing.T) {
		logs, err := svc.Filter(ctx, autograde.QueryFilter{Status: "  failed  "})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, 12, logs[0].SubmissionID)
	})

	t.Run("no match", func(t *testing.T) {
		logs, err := svc.Filter(ctx, autograde.QueryFilter{Course: "Basket Weaving"})
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}
