package repository

import (
	"fmt"

	"folio_fetch/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ProfileRepo stores the one-to-one user profile. Save is an upsert keyed by
// username: the first save inserts, later saves overwrite the row in place.
type ProfileRepo struct {
	db *gorm.DB
}

// NewProfileRepo creates a ProfileRepo.
func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Save creates the profile on first save and overwrites it in place after
// that, as a short fixed sequence: an existence check on the username key,
// then an insert or a username-scoped update. MySQL's ON DUPLICATE KEY
// UPDATE is deliberately not used here: it fires on ANY unique index, so a
// save reusing another user's email would overwrite that user's row instead
// of failing. With the scoped update, collisions on email, PAN, Aadhar or
// mobile surface as ErrDuplicateKey.
func (r *ProfileRepo) Save(profile *domain.Profile) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := validateProfile(profile); err != nil {
		return err
	}
	exists, err := r.Exists(profile.Username)
	if err != nil {
		return err
	}
	if !exists {
		if err := r.db.Create(profile).Error; err != nil {
			return translate(err)
		}
		return nil
	}
	res := r.db.Model(&domain.Profile{}).
		Where("username = ?", profile.Username).
		Updates(profileColumns(profile))
	if res.Error != nil {
		return translate(res.Error)
	}
	return nil
}

// Get fetches the profile for username, or ErrNotFound.
func (r *ProfileRepo) Get(username string) (*domain.Profile, error) {
	if r.db == nil {
		return nil, ErrConnectionUnavailable
	}
	var profile domain.Profile
	if err := r.db.Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// Exists reports whether username has completed a profile.
func (r *ProfileRepo) Exists(username string) (bool, error) {
	if r.db == nil {
		return false, ErrConnectionUnavailable
	}
	var count int64
	if err := r.db.Model(&domain.Profile{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// profileColumns is the full set of mutable columns written on every save;
// the username key never changes.
func profileColumns(p *domain.Profile) map[string]any {
	return map[string]any{
		"full_name":          p.FullName,
		"email":              p.Email,
		"gender":             p.Gender,
		"date_of_birth":      p.DateOfBirth,
		"pan_card":           p.PANCard,
		"aadhar_card":        p.AadharCard,
		"mobile_number":      p.MobileNumber,
		"profile_photo_path": p.ProfilePhotoPath,
		"address":            p.Address,
		"city":               p.City,
		"state":              p.State,
		"pincode":            p.Pincode,
		"country":            p.Country,
	}
}

func validateProfile(profile *domain.Profile) error {
	// Full name, email, date of birth, mobile and address are required on the form.
	if profile.FullName == "" || profile.Email == "" || profile.DateOfBirth.IsZero() ||
		profile.MobileNumber == "" || profile.Address == "" {
		return fmt.Errorf("%w: full name, email, date of birth, mobile number and address are required", ErrValidation)
	}
	return nil
}
