package response_models

import (
	"time"

	"learnlive/internal/models/db_models"
)

type MaterialResponse struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Content     *string   `json:"content,omitempty"`
	FileURL     *string   `json:"file_url,omitempty"`
	ExternalURL *string   `json:"external_url,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMaterialResponse(m *db_models.CourseMaterial) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID.String(),
		CourseID:    m.CourseID.String(),
		Title:       m.Title,
		Description: m.Description,
		Type:        m.Type,
		Content:     m.Content,
		FileURL:     m.FileURL,
		ExternalURL: m.ExternalURL,
		CreatedBy:   m.CreatedBy.String(),
		CreatedAt:   m.CreatedAt,
	}
}

func NewMaterialListResponse(materials []db_models.CourseMaterial) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for i := range materials {
		out = append(out, NewMaterialResponse(&materials[i]))
	}
	return out
}
