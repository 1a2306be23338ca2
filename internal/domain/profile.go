package domain

import "time"

// Profile Model (one-to-one with User, keyed by username)
type Profile struct {
	Username         string    `gorm:"primaryKey;size:255"` // Primary key and foreign key to User
	FullName         string    `gorm:"size:255"`            // Full name
	Email            string    `gorm:"size:255;unique"`     // Email address, unique across users
	Gender           string    `gorm:"size:10"`             // Male, Female or Other
	DateOfBirth      time.Time // Date of birth
	PANCard          string    `gorm:"size:10;unique"`  // PAN card number
	AadharCard       string    `gorm:"size:12;unique"`  // Aadhar card number
	MobileNumber     string    `gorm:"size:10;unique"`  // Mobile number
	ProfilePhotoPath string    `gorm:"size:255"`        // Path to uploaded profile photo
	Address          string    `gorm:"type:text"`       // Street address
	City             string    `gorm:"size:100"`        // City
	State            string    `gorm:"size:100"`        // State
	Pincode          string    `gorm:"size:10"`         // Postal code
	Country          string    `gorm:"size:100"`        // Country
}
