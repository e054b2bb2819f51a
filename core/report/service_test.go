package report_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core/report"
	testutil "github.com/trezcool/ripoti/tests"
)

var serviceFixture = []map[string]interface{}{
	testutil.Record("coh_001", "1", "Anna", "Molefe", "Quiz 1", "85", 1614556800, 1614470400),
	testutil.Record("coh_001", "2", "Kabelo", "Khumalo", "Quiz 1", "", 1614556800, 0),
	testutil.Record("coh_002", "3", "Lindiwe", "Dlamini", "Essay", "70", 1614556800, 1614556800),
	{"malformed": "entry"}, // dropped by normalization
}

func TestService_Cohorts(t *testing.T) {
	svc := report.NewService(&testutil.FixtureFeed{Records: serviceFixture})

	cohorts, err := svc.Cohorts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"coh_001", "coh_002"}; !reflect.DeepEqual(cohorts, want) {
		t.Errorf("cohorts = %v; want %v", cohorts, want)
	}
}

func TestService_Report(t *testing.T) {
	svc := report.NewService(&testutil.FixtureFeed{Records: serviceFixture})

	learners, err := svc.Report(context.Background(), "coh_001")
	if err != nil {
		t.Fatal(err)
	}
	if len(learners) != 2 {
		t.Fatalf("len = %d; want 2", len(learners))
	}
	if got := learners[0].Deliverables[0].Status; got != report.StatusOnTime {
		t.Errorf("anna status = %q; want %q", got, report.StatusOnTime)
	}
	if got := learners[1].Deliverables[0].Status; got != report.StatusMissed {
		t.Errorf("kabelo status = %q; want %q", got, report.StatusMissed)
	}
}

func TestService_Report_unknownCohort(t *testing.T) {
	svc := report.NewService(&testutil.FixtureFeed{Records: serviceFixture})

	learners, err := svc.Report(context.Background(), "coh_404")
	if err != nil {
		t.Fatal(err)
	}
	if learners == nil || len(learners) != 0 {
		t.Errorf("got %#v; want empty non-nil slice", learners)
	}
}

func TestService_ExportCSV(t *testing.T) {
	svc := report.NewService(&testutil.FixtureFeed{Records: serviceFixture})

	filename, content, err := svc.ExportCSV(context.Background(), "coh_001")
	if err != nil {
		t.Fatal(err)
	}
	if want := "cohort-coh_001-compliance-report.csv"; filename != want {
		t.Errorf("filename = %q; want %q", filename, want)
	}
	if lines := strings.Split(content, "\n"); len(lines) != 3 {
		t.Errorf("got %d lines; want 3 (header + 2 learners)", len(lines))
	}

	_, content, err = svc.ExportCSV(context.Background(), "coh_404")
	if err != nil {
		t.Fatal(err)
	}
	if content != "" {
		t.Errorf("empty cohort export = %q; want empty", content)
	}
}

func TestService_feedError(t *testing.T) {
	feedErr := errors.New("feed down")
	svc := report.NewService(&testutil.FixtureFeed{Err: feedErr})

	if _, err := svc.Cohorts(context.Background()); errors.Cause(err) != feedErr {
		t.Errorf("cohorts err = %v; want cause %v", err, feedErr)
	}
	if _, err := svc.Report(context.Background(), "coh_001"); errors.Cause(err) != feedErr {
		t.Errorf("report err = %v; want cause %v", err, feedErr)
	}
}
