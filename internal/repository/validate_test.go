package repository

import (
	"testing"

	"folio_fetch/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateBankAccount(t *testing.T) {
	account := domain.BankAccount{
		BankName:      "HDFC",
		AccountNumber: "123456",
		IFSCCode:      "HDFC0001234",
	}
	assert.NoError(t, validateBankAccount(&account))

	missing := account
	missing.IFSCCode = ""
	assert.ErrorIs(t, validateBankAccount(&missing), ErrValidation)

	negative := account
	negative.AccountBalance = decimal.NewFromInt(-1)
	assert.ErrorIs(t, validateBankAccount(&negative), ErrValidation)
}

func TestValidateMutualFund(t *testing.T) {
	fund := domain.MutualFund{
		FolioNumber: "F-100",
		FundName:    "Index Fund",
		FundType:    "Equity",
	}
	assert.NoError(t, validateMutualFund(&fund))

	missing := fund
	missing.FolioNumber = ""
	assert.ErrorIs(t, validateMutualFund(&missing), ErrValidation)

	badType := fund
	badType.FundType = "Crypto"
	assert.ErrorIs(t, validateMutualFund(&badType), ErrValidation)
}

func TestValidateCard(t *testing.T) {
	card := domain.Card{
		CardNumber:         "4111111111111111",
		CardClassification: "Credit",
		CardType:           "Visa",
		ExpiryMonth:        "08",
		ExpiryYear:         "2030",
		CVV:                "123",
	}
	assert.NoError(t, validateCard(&card))

	missing := card
	missing.CVV = ""
	assert.ErrorIs(t, validateCard(&missing), ErrValidation)

	badNetwork := card
	badNetwork.CardType = "Diners"
	assert.ErrorIs(t, validateCard(&badNetwork), ErrValidation)
}

func TestValidateCardExpiryMonth(t *testing.T) {
	card := domain.Card{
		CardNumber:         "4111111111111111",
		CardClassification: "Credit",
		CardType:           "Visa",
		ExpiryYear:         "2030",
		CVV:                "123",
	}

	// Only zero-padded "01".."12" is an expiry month.
	for _, month := range []string{"01", "09", "12"} {
		card.ExpiryMonth = month
		assert.NoError(t, validateCard(&card), "month %s", month)
	}
	for _, month := range []string{"13", "00", "1", "ab", ""} {
		card.ExpiryMonth = month
		assert.ErrorIs(t, validateCard(&card), ErrValidation, "month %s", month)
	}
}

func TestNilHandleIsUnavailableNotFatal(t *testing.T) {
	// A nil DB handle means storage is unreachable; every operation reports
	// it instead of panicking.
	banks := NewBankRepo(nil)
	err := banks.Create(&domain.BankAccount{BankName: "x", AccountNumber: "1", IFSCCode: "y"})
	assert.ErrorIs(t, err, ErrConnectionUnavailable)

	_, err = banks.ListByOwner("alice")
	assert.ErrorIs(t, err, ErrConnectionUnavailable)

	ok, err := banks.Delete("alice", 1)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrConnectionUnavailable)

	cards := NewCardRepo(nil)
	assert.ErrorIs(t, cards.SetActive("alice", 1, false), ErrConnectionUnavailable)

	profiles := NewProfileRepo(nil)
	_, err = profiles.Get("alice")
	assert.ErrorIs(t, err, ErrConnectionUnavailable)
}
