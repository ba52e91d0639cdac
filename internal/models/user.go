package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that owns meals, plans and grocery lists.
type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
	Email              string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	FirstName          string         `gorm:"size:100" json:"first_name"`
	LastName           string         `gorm:"size:100" json:"last_name"`
	PreferredUnits     string         `gorm:"size:20;not null;default:'imperial'" json:"preferred_units"`
	EmailNotifications bool           `gorm:"not null;default:true" json:"email_notifications"`
	MarketingEmails    bool           `gorm:"not null;default:false" json:"marketing_emails"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
