package moodlesvc

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/trezcool/ripoti/core/submission"
)

type (
	wsQuiz struct {
		ID           int    `json:"id"`
		Course       int    `json:"course"`
		CourseModule int    `json:"coursemodule"`
		Name         string `json:"name"`
	}

	wsQuizzesResponse struct {
		Quizzes []wsQuiz `json:"quizzes"`
	}

	wsQtypesResponse struct {
		QuestionTypes []string `json:"questiontypes"`
	}

	wsEnrolledUsersResponse struct {
		Users []struct {
			ID       int    `json:"id"`
			Fullname string `json:"fullname"`
		} `json:"users"`
	}

	wsAttemptsResponse struct {
		Attempts []struct {
			ID         int      `json:"id"`
			UserID     int      `json:"userid"`
			Attempt    int      `json:"attempt"`
			State      string   `json:"state"`
			TimeFinish int64    `json:"timefinish"`
			SumGrades  *float64 `json:"sumgrades"`
		} `json:"attempts"`
	}
)

func (c *Client) quizzes(ctx context.Context) ([]wsQuiz, error) {
	var res wsQuizzesResponse
	if err := c.call(ctx, wsGetQuizzesByCourses, nil, &res); err != nil {
		return nil, err
	}
	return res.Quizzes, nil
}

// requiresManualGrading reports whether the quiz contains essay questions,
// which the autograder cannot mark.
func (c *Client) requiresManualGrading(ctx context.Context, quizID int) (bool, error) {
	params := make(url.Values)
	params.Set("quizid", strconv.Itoa(quizID))

	var res wsQtypesResponse
	if err := c.call(ctx, wsGetQuizRequiredQtypes, params, &res); err != nil {
		return false, err
	}
	for _, qtype := range res.QuestionTypes {
		if qtype == "essay" {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) enrolledUserIDs(ctx context.Context, cmid int) ([]int, error) {
	params := make(url.Values)
	params.Set("cmid", strconv.Itoa(cmid))

	var res wsEnrolledUsersResponse
	if err := c.call(ctx, wsGetEnrolledUsersByCmid, params, &res); err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(res.Users))
	for _, u := range res.Users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func (c *Client) userAttempts(ctx context.Context, quizID, userID int) (wsAttemptsResponse, error) {
	params := make(url.Values)
	params.Set("quizid", strconv.Itoa(quizID))
	params.Set("userid", strconv.Itoa(userID))

	var res wsAttemptsResponse
	err := c.call(ctx, wsGetUserAttempts, params, &res)
	return res, err
}

// QuizSubmissions lists finished, ungraded attempts on quizzes that require
// manual grading.
func (c *Client) QuizSubmissions(ctx context.Context) ([]submission.Submission, error) {
	courses, err := c.Courses(ctx)
	if err != nil {
		return nil, err
	}
	courseNames := make(map[int]string, len(courses))
	for _, course := range courses {
		courseNames[course.ID] = course.Name
	}

	quizzes, err := c.quizzes(ctx)
	if err != nil {
		return nil, err
	}

	queue := make([]submission.Submission, 0)
	for _, quiz := range quizzes {
		manual, err := c.requiresManualGrading(ctx, quiz.ID)
		if err != nil {
			return nil, err
		}
		if !manual {
			continue
		}

		userIDs, err := c.enrolledUserIDs(ctx, quiz.CourseModule)
		if err != nil {
			return nil, err
		}
		for _, userID := range userIDs {
			res, err := c.userAttempts(ctx, quiz.ID, userID)
			if err != nil {
				return nil, err
			}
			for _, attempt := range res.Attempts {
				if attempt.State != "finished" || attempt.SumGrades != nil {
					continue
				}

				courseName, ok := courseNames[quiz.Course]
				if !ok {
					courseName = "course ID - " + strconv.Itoa(quiz.Course)
				}
				queue = append(queue, submission.Submission{
					ID:             attempt.ID,
					CourseID:       quiz.Course,
					CourseName:     courseName,
					CourseModuleID: quiz.CourseModule,
					Name:           quiz.Name,
					UserID:         attempt.UserID,
					AttemptNumber:  attempt.Attempt,
					SubmittedAt:    time.Unix(attempt.TimeFinish, 0).UTC(),
					Status:         attempt.State,
					Type:           submission.TypeQuiz,
					CourseURL:      fmt.Sprintf("%s/course/view.php?id=%d", c.siteURL, quiz.Course),
					ModuleURL:      fmt.Sprintf("%s/mod/quiz/view.php?id=%d", c.siteURL, quiz.CourseModule),
					GradingURL:     fmt.Sprintf("%s/mod/quiz/review.php?attempt=%d", c.siteURL, attempt.ID),
				})
			}
		}
	}
	return queue, nil
}
