package response_models

import (
	"time"

	"learnlive/internal/models/db_models"
)

type CourseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Grade       string    `json:"grade"`
	Price       float64   `json:"price"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
	TeacherID   string    `json:"teacher_id"`
	TeacherName string    `json:"teacher_name"`
	Students    []string  `json:"students"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCourseResponse(c *db_models.Course) CourseResponse {
	students := []string(c.Students)
	if students == nil {
		students = []string{}
	}
	return CourseResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Grade:       c.Grade,
		Price:       c.Price,
		Thumbnail:   c.Thumbnail,
		TeacherID:   c.TeacherID.String(),
		TeacherName: c.TeacherName,
		Students:    students,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCourseListResponse(courses []db_models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseResponse(&courses[i]))
	}
	return out
}
