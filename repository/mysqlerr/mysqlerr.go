// Package mysqlerr classifies MySQL server errors returned through sqlx.
package mysqlerr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	codeDuplicateEntry  = 1062
	codeNoReferencedRow = 1452
	codeCheckConstraint = 3819
)

func number(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsDuplicate reports a unique index violation.
func IsDuplicate(err error) bool {
	return number(err) == codeDuplicateEntry
}

// IsInvalidReference reports an insert or update pointing at a missing
// parent row, or a violated CHECK constraint.
func IsInvalidReference(err error) bool {
	n := number(err)
	return n == codeNoReferencedRow || n == codeCheckConstraint
}
