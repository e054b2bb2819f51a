package report

import (
	"fmt"
	"strconv"
	"strings"
)

// ExportCSV serializes a cohort report to RFC 4180 CSV text.
// Column layout: learner name, one column per deliverable (status label,
// score appended when present), then the four summary columns. Deliverable
// titles are read off the first learner; Aggregate guarantees all learners
// share the same title sequence.
// An empty learner list yields "" and no file should be produced.
func ExportCSV(cohortName string, learners []LearnerRoster) string {
	if len(learners) == 0 {
		return ""
	}

	headers := []string{"Learner"}
	for _, d := range learners[0].Deliverables {
		headers = append(headers, d.Title)
	}
	headers = append(headers, "Deliverables Done", "Late Count", "Missed Count", "Total Strikes")

	lines := []string{joinRow(headers)}
	for _, learner := range learners {
		row := []string{learner.Name}
		for _, d := range learner.Deliverables {
			cell := string(d.Status)
			if d.Score.Valid {
				cell += fmt.Sprintf(" (%d%%)", d.Score.Int)
			}
			row = append(row, cell)
		}
		row = append(row,
			fmt.Sprintf("%d/%d", learner.Stats.Done, len(learner.Deliverables)),
			strconv.Itoa(learner.Stats.Late),
			strconv.Itoa(learner.Stats.Missed),
			strconv.Itoa(learner.Stats.Strikes),
		)
		lines = append(lines, joinRow(row))
	}
	return strings.Join(lines, "\n")
}

// CSVFilename is the download name convention for a cohort's export.
func CSVFilename(cohortName string) string {
	return "cohort-" + cohortName + "-compliance-report.csv"
}

// joinRow quotes every cell: wrap in double quotes, double internal quotes.
func joinRow(cells []string) string {
	quoted := make([]string, 0, len(cells))
	for _, cell := range cells {
		quoted = append(quoted, `"`+strings.ReplaceAll(cell, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, ",")
}
