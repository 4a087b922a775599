package db_models

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"learnlive/pkg/utils"
)

type Course struct {
	BaseModel
	Title       string `gorm:"not null"`
	Description string
	Grade       string         `gorm:"index;not null"`
	Price       float64        `gorm:"not null"`
	Thumbnail   *string
	TeacherID   uuid.UUID      `gorm:"type:uuid;not null"`
	TeacherName string         `gorm:"not null"`
	Students    pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

func (c *Course) OwnedBy(accountID uuid.UUID) bool {
	return c.TeacherID == accountID
}

func (c *Course) HasStudent(accountID uuid.UUID) bool {
	return slices.Contains(c.Students, accountID.String())
}

// AfterFind rejects rows whose student set holds something other than account ids.
func (c *Course) AfterFind(tx *gorm.DB) error {
	for _, sid := range c.Students {
		if _, err := uuid.Parse(sid); err != nil {
			return fmt.Errorf("%w: course %s has student id %q", utils.ErrMalformedRecord, c.ID, sid)
		}
	}
	return nil
}
