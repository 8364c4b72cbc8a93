package models

import (
	"time"

	"fieldpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleExecutor = "executor"
	RoleManager  = "manager"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"not null;uniqueIndex:idx_users_email,where:deleted_at IS NULL" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `gorm:"not null;uniqueIndex:idx_users_phone,where:deleted_at IS NULL" json:"phone"`

	Role string `gorm:"type:varchar(20);not null" json:"role"` // 'executor' or 'manager'

	Clients []Client `gorm:"foreignKey:ExecutorID" json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
