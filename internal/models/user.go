package models

import "time"

// User is the persistence representation of a back-office user.
type User struct {
	UserID       string `json:"userID"` // Primary Key
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
