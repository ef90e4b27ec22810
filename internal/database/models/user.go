package models

// User is an account holder. Owners carry a seat limit; members are created by invite acceptance.
type User struct {
	BaseModel
	Email          string  `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string  `json:"-" gorm:"not null;size:100"`
	Role           Role    `json:"role" gorm:"type:varchar(20);not null;default:'Member'" validate:"required"`
	SeatLimit      int     `json:"seat_limit" gorm:"not null;default:5"`
	Name           *string `json:"name,omitempty" gorm:"size:200"`
	ProfilePicture *string `json:"profile_picture,omitempty" gorm:"size:500"` // object storage key
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsOwner reports whether the user holds the Owner role
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// EffectiveSeatLimit returns the owner's seat limit, or fallback when none is recorded
func (u *User) EffectiveSeatLimit(fallback int) int {
	if u.SeatLimit > 0 {
		return u.SeatLimit
	}
	return fallback
}
