package response_models

import (
	"time"

	"learnlive/internal/models/db_models"
)

type SessionResponse struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"course_id"`
	TeacherID     string    `json:"teacher_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ModuleID      *string   `json:"module_id,omitempty"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      int       `json:"duration"`
	Teacher       string    `json:"teacher"`
	MeetingLink   string    `json:"meeting_link"`
	RecordingLink *string   `json:"recording_link,omitempty"`
	Attendees     []string  `json:"attendees"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewSessionResponse(s *db_models.Session) SessionResponse {
	attendees := []string(s.Attendees)
	if attendees == nil {
		attendees = []string{}
	}
	return SessionResponse{
		ID:            s.ID.String(),
		CourseID:      s.CourseID.String(),
		TeacherID:     s.TeacherID.String(),
		Title:         s.Title,
		Description:   s.Description,
		ModuleID:      s.ModuleID,
		Date:          s.Date,
		Time:          s.Time,
		Duration:      s.Duration,
		Teacher:       s.Teacher,
		MeetingLink:   s.MeetingLink,
		RecordingLink: s.RecordingLink,
		Attendees:     attendees,
		CreatedAt:     s.CreatedAt,
	}
}

func NewSessionListResponse(sessions []db_models.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, NewSessionResponse(&sessions[i]))
	}
	return out
}
