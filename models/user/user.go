package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleRider Role = "rider"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleRider
}

// User is keyed by verified email. Role is the single source of truth for
// authorization checks; rider lifecycle transitions keep it in sync.
type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name  string `gorm:"size:255" json:"name"`
	Role  Role   `gorm:"size:20;not null;default:user" json:"role"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
