package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	AdminRole       Role = "admin"
	EditorRole      Role = "editor"
	DSMRole         Role = "dsm"
	BranchAdminRole Role = "branch_admin"
	DSERole         Role = "dse"
)

// Elevated reports whether the role may act on any lead regardless of
// who it is assigned to.
func (r Role) Elevated() bool {
	switch r {
	case AdminRole, EditorRole, DSMRole, BranchAdminRole:
		return true
	case DSERole:
		return false
	default:
		return false
	}
}

// DSECapable reports whether an account with this role can be assigned
// leads as field sales staff.
func (r Role) DSECapable() bool {
	return r == DSERole
}

func (r Role) Valid() bool {
	switch r {
	case AdminRole, EditorRole, DSMRole, BranchAdminRole, DSERole:
		return true
	}
	return false
}

type AuthMethod string

const (
	AuthMethodPassword      AuthMethod = "password"
	AuthMethodAuthenticator AuthMethod = "authenticator"
)

// User represents back-office staff with role-based access
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	FirstName      string     `gorm:"not null" json:"first_name"`
	LastName       string     `gorm:"not null" json:"last_name"`
	Email          string     `gorm:"unique;not null" json:"email"`
	Phone          string     `gorm:"unique" json:"phone"`
	WhatsAppNumber *string    `json:"whatsapp_number"`
	Password       string     `json:"-"` // Never include in JSON responses
	AuthMethod     AuthMethod `gorm:"type:varchar(20);default:'password'" json:"auth_method"`
	TOTPSecret     string     `json:"-" gorm:"column:totp_secret"`

	Role   Role    `gorm:"type:varchar(30);not null" json:"role"`
	Branch *string `gorm:"type:varchar(60)" json:"branch"`

	// Status
	Active      bool       `gorm:"default:true" json:"active"`
	IsSuspended bool       `gorm:"default:false" json:"is_suspended"`
	LastLoginAt *time.Time `json:"last_login_at"`

	ProfilePictureURL *string `json:"profile_picture_url"`

	// Audit fields
	CreatedBy string         `gorm:"not null" json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
