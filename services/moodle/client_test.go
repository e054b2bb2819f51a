package moodlesvc

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ripoti/core"
	"github.com/trezcool/ripoti/core/submission"
)

// newWsServer fakes the LMS webservice endpoint, dispatching on wsfunction.
func newWsServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s3cret", r.URL.Query().Get("wstoken"))
		assert.Equal(t, "json", r.URL.Query().Get("moodlewsrestformat"))

		wsfunction := r.URL.Query().Get("wsfunction")
		handler, ok := handlers[wsfunction]
		if !ok {
			t.Errorf("unexpected wsfunction %q", wsfunction)
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func newTestClient(server *httptest.Server) *Client {
	conf := &core.Config{}
	conf.Moodle.ServiceURL = server.URL
	conf.Moodle.SiteURL = "https://lms.example.com"
	conf.Moodle.Token = "s3cret"
	return NewClient(conf)
}

func TestClient_Courses(t *testing.T) {
	server := newWsServer(t, map[string]http.HandlerFunc{
		wsGetCourses: respond(`[
			{"id": 1, "shortname": "Python 101", "fullname": "Introduction to Python", "timecreated": 1600000000},
			{"id": 2, "shortname": "Databases", "fullname": "Relational Databases", "timecreated": 1600003600}
		]`),
	})
	defer server.Close()

	courses, err := newTestClient(server).Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, Course{ID: 1, Name: "Python 101", CreatedAt: time.Unix(1600000000, 0).UTC()}, courses[0])
}

func TestClient_AssignmentSubmissions(t *testing.T) {
	server := newWsServer(t, map[string]http.HandlerFunc{
		wsGetAssignments: respond(`{"courses": [
			{"id": 1, "shortname": "Python 101", "assignments": [
				{"id": 5, "cmid": 50, "course": 1, "name": "Essay"}
			]}
		]}`),
		wsGetSubmissions: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("assignmentids[0]"))
			respond(`{"assignments": [
				{"assignmentid": 5, "submissions": [
					{"id": 11, "userid": 7, "attemptnumber": 0, "timemodified": 1614556800, "status": "submitted", "gradingstatus": "notgraded"},
					{"id": 12, "userid": 8, "attemptnumber": 0, "timemodified": 1614556800, "status": "submitted", "gradingstatus": "graded"},
					{"id": 13, "userid": 9, "attemptnumber": 0, "timemodified": 1614556800, "status": "new", "gradingstatus": "notgraded"}
				]}
			]}`)(w, r)
		},
	})
	defer server.Close()

	queue, err := newTestClient(server).AssignmentSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1, "graded and unsubmitted work must be filtered out")

	sub := queue[0]
	assert.Equal(t, 11, sub.ID)
	assert.Equal(t, "Python 101", sub.CourseName)
	assert.Equal(t, "Essay", sub.Name)
	assert.Equal(t, submission.TypeAssignment, sub.Type)
	assert.Equal(t, time.Unix(1614556800, 0).UTC(), sub.SubmittedAt)
	assert.Equal(t, "https://lms.example.com/course/view.php?id=1", sub.CourseURL)
	assert.Equal(t, "https://lms.example.com/mod/assign/view.php?id=50", sub.ModuleURL)
	assert.Equal(t, "https://lms.example.com/mod/assign/view.php?id=50&action=grader&userid=7", sub.GradingURL)
}

func TestClient_QuizSubmissions(t *testing.T) {
	server := newWsServer(t, map[string]http.HandlerFunc{
		wsGetCourses: respond(`[{"id": 1, "shortname": "Python 101", "timecreated": 1600000000}]`),
		wsGetQuizzesByCourses: respond(`{"quizzes": [
			{"id": 9, "course": 1, "coursemodule": 90, "name": "Final Quiz"},
			{"id": 10, "course": 1, "coursemodule": 91, "name": "Auto Quiz"}
		]}`),
		wsGetQuizRequiredQtypes: func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("quizid") == "9" {
				respond(`{"questiontypes": ["multichoice", "essay"]}`)(w, r)
				return
			}
			respond(`{"questiontypes": ["multichoice", "truefalse"]}`)(w, r)
		},
		wsGetEnrolledUsersByCmid: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "90", r.URL.Query().Get("cmid"))
			respond(`{"users": [{"id": 7, "fullname": "Anna Molefe"}]}`)(w, r)
		},
		wsGetUserAttempts: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "9", r.URL.Query().Get("quizid"))
			assert.Equal(t, "7", r.URL.Query().Get("userid"))
			respond(`{"attempts": [
				{"id": 21, "userid": 7, "attempt": 1, "state": "finished", "timefinish": 1614556800, "sumgrades": null},
				{"id": 22, "userid": 7, "attempt": 2, "state": "finished", "timefinish": 1614560400, "sumgrades": 5.0},
				{"id": 23, "userid": 7, "attempt": 3, "state": "inprogress", "timefinish": 0, "sumgrades": null}
			]}`)(w, r)
		},
	})
	defer server.Close()

	queue, err := newTestClient(server).QuizSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1, "only finished, ungraded attempts on essay quizzes qualify")

	sub := queue[0]
	assert.Equal(t, 21, sub.ID)
	assert.Equal(t, "Python 101", sub.CourseName)
	assert.Equal(t, "Final Quiz", sub.Name)
	assert.Equal(t, submission.TypeQuiz, sub.Type)
	assert.Equal(t, "https://lms.example.com/mod/quiz/review.php?attempt=21", sub.GradingURL)
}

func TestClient_QuizSubmissions_unknownCourse(t *testing.T) {
	server := newWsServer(t, map[string]http.HandlerFunc{
		wsGetCourses: respond(`[]`),
		wsGetQuizzesByCourses: respond(`{"quizzes": [
			{"id": 9, "course": 42, "coursemodule": 90, "name": "Final Quiz"}
		]}`),
		wsGetQuizRequiredQtypes:  respond(`{"questiontypes": ["essay"]}`),
		wsGetEnrolledUsersByCmid: respond(`{"users": [{"id": 7}]}`),
		wsGetUserAttempts: respond(`{"attempts": [
			{"id": 21, "userid": 7, "attempt": 1, "state": "finished", "timefinish": 1614556800, "sumgrades": null}
		]}`),
	})
	defer server.Close()

	queue, err := newTestClient(server).QuizSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "course ID - 42", queue[0].CourseName)
}

func TestClient_wsException(t *testing.T) {
	server := newWsServer(t, map[string]http.HandlerFunc{
		wsGetCourses: respond(`{"exception": "moodle_exception", "errorcode": "invalidtoken", "message": "Invalid token"}`),
	})
	defer server.Close()

	_, err := newTestClient(server).Courses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid token")
	assert.Contains(t, err.Error(), "invalidtoken")
}

func TestClient_httpError(t *testing.T) {
	server := newWsServer(t, map[string]http.HandlerFunc{
		wsGetCourses: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
	})
	defer server.Close()

	_, err := newTestClient(server).Courses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
