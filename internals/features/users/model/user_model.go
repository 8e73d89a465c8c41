package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserModel is an admin-panel account. Roles gate the admin surface:
// admin (everything), staff (day-to-day operations), viewer (read-only).
type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName     string `gorm:"column:user_name;type:varchar(80);not null" json:"user_name"`
	UserEmail    string `gorm:"column:user_email;type:varchar(160);not null;uniqueIndex" json:"user_email"`
	UserPassword string `gorm:"column:user_password;not null" json:"-"`
	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'staff'" json:"user_role"`
	UserActive   bool   `gorm:"column:user_active;not null;default:true" json:"user_active"`

	UserLastLoginAt *time.Time `gorm:"column:user_last_login_at" json:"user_last_login_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
