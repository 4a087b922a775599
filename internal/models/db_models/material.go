package db_models

import "github.com/google/uuid"

type CourseMaterial struct {
	BaseModel
	CourseID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Type        string `gorm:"not null"`
	Content     *string
	FileName    *string
	FileURL     *string
	ExternalURL *string
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
}

func (CourseMaterial) TableName() string {
	return "course_materials"
}
