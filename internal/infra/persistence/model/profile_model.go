package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID is shared with the credential of the same reader.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username  *string   `gorm:"column:username;type:varchar(30);uniqueIndex"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	FullName  string    `gorm:"column:full_name;type:varchar(120)"`
	AvatarURL string    `gorm:"column:avatar_url;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
