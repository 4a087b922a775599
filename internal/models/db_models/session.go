package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Session is a scheduled live class. Date and Time use utils.DateLayout and
// utils.ClockLayout so lexical order matches chronological order.
type Session struct {
	BaseModel
	CourseID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TeacherID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"not null"`
	Description   string
	ModuleID      *string
	Date          string `gorm:"not null"`
	Time          string `gorm:"not null"`
	Duration      int    `gorm:"not null"`
	Teacher       string
	MeetingLink   string `gorm:"not null"`
	RecordingLink *string
	Attendees     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}
