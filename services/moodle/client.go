package moodlesvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core"
	"github.com/trezcool/ripoti/core/submission"
)

var _ submission.LMS = (*Client)(nil)

// webservice function names
const (
	wsGetCourses             = "core_course_get_courses"
	wsGetAssignments         = "mod_assign_get_assignments"
	wsGetSubmissions         = "mod_assign_get_submissions"
	wsGetQuizzesByCourses    = "mod_quiz_get_quizzes_by_courses"
	wsGetQuizRequiredQtypes  = "mod_quiz_get_quiz_required_qtypes"
	wsGetEnrolledUsersByCmid = "core_course_get_enrolled_users_by_cmid"
	wsGetUserAttempts        = "mod_quiz_get_user_attempts"
)

// Client talks to the LMS webservice REST API.
type Client struct {
	serviceURL string
	siteURL    string
	token      string
	http       *http.Client
}

func NewClient(conf *core.Config) *Client {
	return &Client{
		serviceURL: conf.Moodle.ServiceURL,
		siteURL:    conf.Moodle.SiteURL,
		token:      conf.Moodle.Token,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

type wsError struct {
	Exception string `json:"exception"`
	ErrorCode string `json:"errorcode"`
	Message   string `json:"message"`
}

// call performs a GET against the webservice endpoint and decodes the JSON
// response into v. The LMS reports failures as a 200 body carrying an
// "exception" object; those are surfaced as errors too.
func (c *Client) call(ctx context.Context, wsfunction string, params url.Values, v interface{}) error {
	q := make(url.Values)
	q.Set("wstoken", c.token)
	q.Set("wsfunction", wsfunction)
	q.Set("moodlewsrestformat", "json")
	for key, vals := range params {
		for _, val := range vals {
			q.Add(key, val)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serviceURL+"?"+q.Encode(), nil)
	if err != nil {
		return errors.Wrapf(err, "building %s request", wsfunction)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "calling %s", wsfunction)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("calling %s: status %d", wsfunction, res.StatusCode)
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s response", wsfunction)
	}
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		var wserr wsError
		if err := json.Unmarshal(body, &wserr); err == nil && wserr.Exception != "" {
			return errors.Errorf("calling %s: %s (%s)", wsfunction, wserr.Message, wserr.ErrorCode)
		}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "decoding %s response", wsfunction)
	}
	return nil
}
