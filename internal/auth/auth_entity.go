package auth

import "time"

// User is the login view of a row in users. Self-service submitters have
// no password and therefore cannot log in.
type User struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     string  `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	Password  *string `gorm:"type:varchar(255)"`
	Role      string  `gorm:"type:varchar(50);not null;default:USER"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

func (u User) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}
