package repository

import (
	"fmt"

	"folio_fetch/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// BankRepo provides CRUD over a user's bank accounts. Every operation is a
// single auto-committed statement against the shared *gorm.DB handle.
type BankRepo struct {
	db *gorm.DB
}

// NewBankRepo creates a BankRepo. A nil handle is tolerated; operations
// report ErrConnectionUnavailable instead of panicking.
func NewBankRepo(db *gorm.DB) *BankRepo {
	return &BankRepo{db: db}
}

// Create inserts a new bank account for its owner. A (username, account
// number) collision is reported as ErrDuplicateKey.
func (r *BankRepo) Create(account *domain.BankAccount) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := validateBankAccount(account); err != nil {
		return err
	}
	if err := r.db.Create(account).Error; err != nil {
		return translate(err)
	}
	return nil
}

// ListByOwner returns all bank accounts owned by username.
func (r *BankRepo) ListByOwner(username string) ([]domain.BankAccount, error) {
	if r.db == nil {
		return nil, ErrConnectionUnavailable
	}
	var accounts []domain.BankAccount
	if err := r.db.Where("username = ?", username).Find(&accounts).Error; err != nil {
		return nil, translate(err)
	}
	return accounts, nil
}

// Update replaces every mutable column of the account with the given id.
// Partial updates are not supported; the caller supplies the full row. The
// statement is scoped to the owner, so one user can never reach another's rows.
func (r *BankRepo) Update(username string, id uint, account *domain.BankAccount) error {
	if r.db == nil {
		return ErrConnectionUnavailable
	}
	if err := validateBankAccount(account); err != nil {
		return err
	}
	res := r.db.Model(&domain.BankAccount{}).Where("id = ? AND username = ?", id, username).Updates(map[string]any{
		"bank_name":       account.BankName,
		"account_number":  account.AccountNumber,
		"ifsc_code":       account.IFSCCode,
		"account_balance": account.AccountBalance,
		"nominee_name":    account.NomineeName,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the owner's account with the given id, returning false when
// no row matched (mirrors rows-affected rather than raising).
func (r *BankRepo) Delete(username string, id uint) (bool, error) {
	if r.db == nil {
		return false, ErrConnectionUnavailable
	}
	res := r.db.Where("username = ?", username).Delete(&domain.BankAccount{}, id)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func validateBankAccount(account *domain.BankAccount) error {
	// Bank name, account number and IFSC are the starred fields on the form.
	if account.BankName == "" || account.AccountNumber == "" || account.IFSCCode == "" {
		return fmt.Errorf("%w: bank name, account number and IFSC code are required", ErrValidation)
	}
	if account.AccountBalance.IsNegative() {
		return fmt.Errorf("%w: account balance cannot be negative", ErrValidation)
	}
	return nil
}
