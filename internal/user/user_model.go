package user

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleDT    = "dt"
	RoleAdmin = "admin"

	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusBanned    = "banned"
	StatusInactive  = "inactive"
)

// User is a dashboard account. A user with the "dt" role manages at most one
// club, referenced by ClubID.
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"index;not null;default:'user'" json:"role"`
	Status   string `gorm:"index;not null;default:'active'" json:"status"`
	ClubID   *uint  `gorm:"index" json:"club_id,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// IsManager reports whether the user is a DT currently assigned to a club.
func (u *User) IsManager() bool {
	return u.Role == RoleDT && u.ClubID != nil
}
