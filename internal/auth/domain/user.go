package domain

import "time"

// User is a registered account. Password holds whatever the configured
// credential verifier produced at registration (a bcrypt hash by default).
type User struct {
	ID        int64
	Email     string
	Password  string
	Firstname string
	CreatedAt time.Time
}
