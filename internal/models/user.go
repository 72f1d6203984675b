package models

import "time"

// User represents a registered account.
type User struct {
	ID        string    `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	FullName  string    `json:"fullName" gorm:"type:varchar(255)" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required"` // bcrypt hash, no json tag for security
	CreatedOn time.Time `json:"createdOn"`
}

// Profile is the self-lookup view of a user.
type Profile struct {
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	ID        string    `json:"_id"`
	CreatedOn time.Time `json:"createdOn"`
}

// Profile returns the projection served by the get-user endpoint.
func (u *User) Profile() Profile {
	return Profile{
		FullName:  u.FullName,
		Email:     u.Email,
		ID:        u.ID,
		CreatedOn: u.CreatedOn,
	}
}
