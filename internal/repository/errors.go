package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql" // MySQL driver error codes
	"gorm.io/gorm"                   // GORM ORM library
)

// Error taxonomy surfaced by every repository. Handlers translate these into
// user-visible messages; none of them is fatal.
var (
	ErrConnectionUnavailable = errors.New("storage unavailable")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrNotFound              = errors.New("record not found")
	ErrValidation            = errors.New("missing required field")
)

// mysqlDuplicateEntry is the server error code for a unique index violation.
const mysqlDuplicateEntry = 1062

// translate maps driver and gorm errors onto the repository taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
