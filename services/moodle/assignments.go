package moodlesvc

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/trezcool/ripoti/core/submission"
)

type assignmentMeta struct {
	ID             int
	CourseID       int
	CourseName     string
	CourseModuleID int
	Name           string
}

type (
	wsAssignmentsResponse struct {
		Courses []struct {
			ID          int    `json:"id"`
			Shortname   string `json:"shortname"`
			Assignments []struct {
				ID     int    `json:"id"`
				CMID   int    `json:"cmid"`
				Course int    `json:"course"`
				Name   string `json:"name"`
			} `json:"assignments"`
		} `json:"courses"`
	}

	wsSubmissionsResponse struct {
		Assignments []struct {
			AssignmentID int `json:"assignmentid"`
			Submissions  []struct {
				ID            int    `json:"id"`
				UserID        int    `json:"userid"`
				AttemptNumber int    `json:"attemptnumber"`
				TimeModified  int64  `json:"timemodified"`
				Status        string `json:"status"`
				GradingStatus string `json:"gradingstatus"`
			} `json:"submissions"`
		} `json:"assignments"`
	}
)

func (c *Client) assignments(ctx context.Context) ([]assignmentMeta, error) {
	var res wsAssignmentsResponse
	if err := c.call(ctx, wsGetAssignments, nil, &res); err != nil {
		return nil, err
	}

	var metas []assignmentMeta
	for _, course := range res.Courses {
		for _, a := range course.Assignments {
			metas = append(metas, assignmentMeta{
				ID:             a.ID,
				CourseID:       a.Course,
				CourseName:     course.Shortname,
				CourseModuleID: a.CMID,
				Name:           a.Name,
			})
		}
	}
	return metas, nil
}

// AssignmentSubmissions lists assignment submissions awaiting manual grading:
// submitted work that has not been graded yet.
func (c *Client) AssignmentSubmissions(ctx context.Context) ([]submission.Submission, error) {
	metas, err := c.assignments(ctx)
	if err != nil {
		return nil, err
	}

	queue := make([]submission.Submission, 0)
	for _, meta := range metas {
		params := make(url.Values)
		params.Set("assignmentids[0]", strconv.Itoa(meta.ID))

		var res wsSubmissionsResponse
		if err := c.call(ctx, wsGetSubmissions, params, &res); err != nil {
			return nil, err
		}
		if len(res.Assignments) == 0 {
			continue
		}

		for _, sub := range res.Assignments[0].Submissions {
			if sub.Status != "submitted" || sub.GradingStatus == "graded" {
				continue
			}
			queue = append(queue, submission.Submission{
				ID:             sub.ID,
				CourseID:       meta.CourseID,
				CourseName:     meta.CourseName,
				CourseModuleID: meta.CourseModuleID,
				Name:           meta.Name,
				UserID:         sub.UserID,
				AttemptNumber:  sub.AttemptNumber,
				SubmittedAt:    time.Unix(sub.TimeModified, 0).UTC(),
				Status:         sub.Status,
				Type:           submission.TypeAssignment,
				CourseURL:      fmt.Sprintf("%s/course/view.php?id=%d", c.siteURL, meta.CourseID),
				ModuleURL:      fmt.Sprintf("%s/mod/assign/view.php?id=%d", c.siteURL, meta.CourseModuleID),
				GradingURL:     fmt.Sprintf("%s/mod/assign/view.php?id=%d&action=grader&userid=%d", c.siteURL, meta.CourseModuleID, sub.UserID),
			})
		}
	}
	return queue, nil
}
