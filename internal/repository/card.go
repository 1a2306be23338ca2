package repository

import (
	"fmt"
	"slices"
	"strconv"

	"folio_fetch/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CardRepo provides CRUD plus an active-flag toggle over a user's cards.
type CardRepo struct {
	db *gorm.DB
}

// NewCardRepo creates a CardRepo.
func NewCardRepo(db *gorm.DB) *CardRepo {
	return &CardRepo{db: db}
}

// Create inserts a new card for its owner. A (username, card number)
// collision is reported as ErrDuplicateKey.
func (r *CardRepo) Create(card *domain.Card) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := validateCard(card); err != nil {
		return err
	}
	if err := r.db.Create(card).Error; err != nil {
		return translate(err)
	}
	return nil
}

// ListByOwner returns all cards owned by username, active cards first, then
// ordered by classification.
func (r *CardRepo) ListByOwner(username string) ([]domain.Card, error) {
	if r.db == nil {
		return nil, ErrConnectionUnavailable
	}
	var cards []domain.Card
	if err := r.db.Where("username = ?", username).
		Order("is_active DESC, card_classification").
		Find(&cards).Error; err != nil {
		return nil, translate(err)
	}
	return cards, nil
}

// Update replaces every mutable column of the card with the given id,
// scoped to the owner.
func (r *CardRepo) Update(username string, id uint, card *domain.Card) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := validateCard(card); err != nil {
		return err
	}
	res := r.db.Model(&domain.Card{}).Where("id = ? AND username = ?", id, username).Updates(map[string]any{
		"card_name":           card.CardName,
		"card_number":         card.CardNumber,
		"card_classification": card.CardClassification,
		"card_type":           card.CardType,
		"expiry_month":        card.ExpiryMonth,
		"expiry_year":         card.ExpiryYear,
		"cvv":                 card.CVV,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the owner's card with the given id, returning false when no
// row matched.
func (r *CardRepo) Delete(username string, id uint) (bool, error) {
	if r.db == nil {
		return false, ErrConnectionUnavailable
	}
	res := r.db.Where("username = ?", username).Delete(&domain.Card{}, id)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// SetActive toggles the single is_active flag on the owner's card with the
// given id.
func (r *CardRepo) SetActive(username string, id uint, active bool) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	res := r.db.Model(&domain.Card{}).Where("id = ? AND username = ?", id, username).Update("is_active", active)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func validateCard(card *domain.Card) error {
	// Card number and CVV are the starred fields on the form.
	if card.CardNumber == "" || card.CVV == "" {
		return fmt.Errorf("%w: card number and CVV are required", ErrValidation)
	}
	if !slices.Contains(domain.CardClassifications, card.CardClassification) {
		return fmt.Errorf("%w: unknown card classification %q", ErrValidation, card.CardClassification)
	}
	if !slices.Contains(domain.CardNetworks, card.CardType) {
		return fmt.Errorf("%w: unknown card network %q", ErrValidation, card.CardType)
	}
	// Expiry month is a zero-padded "01".."12"
	if month, err := strconv.Atoi(card.ExpiryMonth); err != nil || len(card.ExpiryMonth) != 2 || month < 1 || month > 12 {
		return fmt.Errorf("%w: invalid expiry month %q", ErrValidation, card.ExpiryMonth)
	}
	return nil
}
