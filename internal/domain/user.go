package domain

import "time"

// User Model
type User struct {
	Username         string    `gorm:"primaryKey;size:255"` // Unique username, natural primary key
	Password         string    `gorm:"not null"`            // Hashed password
	RegistrationDate time.Time `gorm:"autoCreateTime"`      // Timestamp of signup
	Profile          *Profile  `gorm:"foreignKey:Username"` // Optional one-to-one profile
}
