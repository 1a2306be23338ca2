package repository

import (
	"fmt"
	"slices"

	"folio_fetch/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// FundRepo provides CRUD over a user's mutual fund holdings.
type FundRepo struct {
	db *gorm.DB
}

// NewFundRepo creates a FundRepo.
func NewFundRepo(db *gorm.DB) *FundRepo {
	return &FundRepo{db: db}
}

// Create inserts a new mutual fund for its owner. A (username, folio number)
// collision is reported as ErrDuplicateKey.
func (r *FundRepo) Create(fund *domain.MutualFund) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := validateMutualFund(fund); err != nil {
		return err
	}
	if err := r.db.Create(fund).Error; err != nil {
		return translate(err)
	}
	return nil
}

// ListByOwner returns all mutual funds owned by username.
func (r *FundRepo) ListByOwner(username string) ([]domain.MutualFund, error) {
	if r.db == nil {
		return nil, ErrConnectionUnavailable
	}
	var funds []domain.MutualFund
	if err := r.db.Where("username = ?", username).Find(&funds).Error; err != nil {
		return nil, translate(err)
	}
	return funds, nil
}

// Update replaces every mutable column of the fund with the given id,
// scoped to the owner.
func (r *FundRepo) Update(username string, id uint, fund *domain.MutualFund) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := validateMutualFund(fund); err != nil {
		return err
	}
	res := r.db.Model(&domain.MutualFund{}).Where("id = ? AND username = ?", id, username).Updates(map[string]any{
		"folio_number":      fund.FolioNumber,
		"fund_name":         fund.FundName,
		"fund_type":         fund.FundType,
		"investment_amount": fund.InvestmentAmount,
		"current_value":     fund.CurrentValue,
		"nominee_name":      fund.NomineeName,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the owner's fund with the given id, returning false when no
// row matched.
func (r *FundRepo) Delete(username string, id uint) (bool, error) {
	if r.db == nil {
		return false, ErrConnectionUnavailable
	}
	res := r.db.Where("username = ?", username).Delete(&domain.MutualFund{}, id)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func validateMutualFund(fund *domain.MutualFund) error {
	if fund.FolioNumber == "" || fund.FundName == "" {
		return fmt.Errorf("%w: folio number and fund name are required", ErrValidation)
	}
	if !slices.Contains(domain.FundTypes, fund.FundType) {
		return fmt.Errorf("%w: unknown fund type %q", ErrValidation, fund.FundType)
	}
	if fund.InvestmentAmount.IsNegative() || fund.CurrentValue.IsNegative() {
		return fmt.Errorf("%w: amounts cannot be negative", ErrValidation)
	}
	return nil
}
