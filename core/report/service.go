package report

import (
	"context"

	"github.com/pkg/errors"
)

// Feed is the compliance-record source. The service has no opinion on how
// the records are fetched or retried; it accepts whatever (possibly empty)
// array it is given and recomputes deterministically.
type Feed interface {
	FetchComplianceRecords(ctx context.Context) ([]map[string]interface{}, error)
}

type Service struct {
	feed Feed
}

func NewService(feed Feed) *Service {
	return &Service{feed: feed}
}

func (svc *Service) fetch(ctx context.Context) ([]RawRecord, error) {
	raws, err := svc.feed.FetchComplianceRecords(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching compliance records")
	}
	return NormalizeRecords(raws), nil
}

// Cohorts lists the known cohort ids.
func (svc *Service) Cohorts(ctx context.Context) ([]string, error) {
	records, err := svc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Cohorts(records), nil
}

// Report computes the per-learner compliance rosters for one cohort.
func (svc *Service) Report(ctx context.Context, cohortID string) ([]LearnerRoster, error) {
	records, err := svc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(records, cohortID), nil
}

// ExportCSV renders one cohort's report as CSV. An empty content string
// means the cohort has no learners and no file should be produced.
func (svc *Service) ExportCSV(ctx context.Context, cohortID string) (filename, content string, err error) {
	learners, err := svc.Report(ctx, cohortID)
	if err != nil {
		return "", "", err
	}
	return CSVFilename(cohortID), ExportCSV(cohortID, learners), nil
}
