package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table.
type CredentialModel struct {
	UserID       uuid.UUID     `gorm:"column:user_id;type:uuid;primaryKey"`
	Email        string        `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string        `gorm:"column:password_hash;type:varchar(255);not null"`
	FullName     string        `gorm:"column:full_name;type:varchar(120)"`
	CreatedAt    time.Time     `gorm:"column:created_at"`
	UpdatedAt    time.Time     `gorm:"column:updated_at"`
	Profile      *ProfileModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. UUID columns align with PostgreSQL schema.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&ProductModel{},
		&ProfileModel{},
		&CredentialModel{},
		&RefreshTokenModel{},
		&CartItemModel{},
		&FavoriteModel{},
		&OrderModel{},
	}
}
