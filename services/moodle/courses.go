package moodlesvc

import (
	"context"
	"time"
)

type Course struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

type wsCourse struct {
	ID          int    `json:"id"`
	Shortname   string `json:"shortname"`
	Fullname    string `json:"fullname"`
	TimeCreated int64  `json:"timecreated"`
}

// Courses lists all courses known to the LMS.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	var wsCourses []wsCourse
	if err := c.call(ctx, wsGetCourses, nil, &wsCourses); err != nil {
		return nil, err
	}

	courses := make([]Course, 0, len(wsCourses))
	for _, wc := range wsCourses {
		courses = append(courses, Course{
			ID:        wc.ID,
			Name:      wc.Shortname,
			CreatedAt: time.Unix(wc.TimeCreated, 0).UTC(),
		})
	}
	return courses, nil
}
