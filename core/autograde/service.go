package autograde

import (
	"context"

	"github.com/trezcool/ripoti/core"
)

type (
	Repository interface {
		CreateLog(ctx context.Context, lg Log) (Log, error)
		// FilterLogs applies AND operation on available QueryFilter fields,
		// newest first.
		FilterLogs(ctx context.Context, filter QueryFilter) ([]Log, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Log, error) {
	filter.Course = core.CleanString(filter.Course)
	filter.Assignment = core.CleanString(filter.Assignment)
	filter.Status = core.CleanString(filter.Status)
	return svc.repo.FilterLogs(ctx, filter)
}
