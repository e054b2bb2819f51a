package report

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/volatiletech/null/v8"
)

func TestExportCSV(t *testing.T) {
	learners := []LearnerRoster{
		{
			ID:     "1",
			Name:   "Anna Molefe",
			Cohort: "coh_001",
			Deliverables: []Deliverable{
				{Title: "Essay", Status: StatusLate, Score: null.IntFrom(60), LateDays: 1},
				{Title: "Quiz", Status: StatusOnTime, Score: null.IntFrom(85)},
			},
			Stats: Stats{Done: 1, Late: 1, Strikes: 1},
		},
		{
			ID:     "2",
			Name:   "Kabelo Khumalo",
			Cohort: "coh_001",
			Deliverables: []Deliverable{
				{Title: "Essay", Status: StatusMissed},
				{Title: "Quiz", Status: StatusPending},
			},
			Stats: Stats{Missed: 1, Strikes: 1},
		},
	}

	want := strings.Join([]string{
		`"Learner","Essay","Quiz","Deliverables Done","Late Count","Missed Count","Total Strikes"`,
		`"Anna Molefe","Late (60%)","On time (85%)","1/2","1","0","1"`,
		`"Kabelo Khumalo","Missed","Pending","0/2","0","1","1"`,
	}, "\n")

	got := ExportCSV("coh_001", learners)
	if got != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		})
		t.Errorf("export mismatch:\n%s", diff)
	}
}

func TestExportCSV_escapesQuotes(t *testing.T) {
	learners := []LearnerRoster{
		{
			ID:   "1",
			Name: `Ann "AJ" Smith`,
			Deliverables: []Deliverable{
				{Title: `The "Final" Project`, Status: StatusOnTime},
			},
			Stats: Stats{Done: 1},
		},
	}
	got := ExportCSV("coh_001", learners)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"The ""Final"" Project"`) {
		t.Errorf("header not escaped: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"Ann ""AJ"" Smith"`) {
		t.Errorf("name not escaped: %s", lines[1])
	}
}

func TestExportCSV_scoreZeroShown(t *testing.T) {
	learners := []LearnerRoster{
		{
			ID:   "1",
			Name: "Anna Molefe",
			Deliverables: []Deliverable{
				{Title: "Quiz", Status: StatusOnTime, Score: null.IntFrom(0)},
			},
			Stats: Stats{Done: 1},
		},
	}
	got := ExportCSV("coh_001", learners)
	if !strings.Contains(got, `"On time (0%)"`) {
		t.Errorf("zero score should be rendered: %s", got)
	}
}

func TestExportCSV_empty(t *testing.T) {
	if got := ExportCSV("coh_001", nil); got != "" {
		t.Errorf("got %q; want empty string", got)
	}
	if got := ExportCSV("coh_001", []LearnerRoster{}); got != "" {
		t.Errorf("got %q; want empty string", got)
	}
}

func TestCSVFilename(t *testing.T) {
	if got, want := CSVFilename("coh_001"), "cohort-coh_001-compliance-report.csv"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
