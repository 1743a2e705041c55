package mysqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062}
	fk := &mysql.MySQLError{Number: 1452}
	check := &mysql.MySQLError{Number: 3819}

	assert.True(t, IsDuplicate(dup))
	assert.True(t, IsDuplicate(fmt.Errorf("insert: %w", dup)))
	assert.False(t, IsDuplicate(fk))

	assert.True(t, IsInvalidReference(fk))
	assert.True(t, IsInvalidReference(check))
	assert.False(t, IsInvalidReference(dup))

	assert.False(t, IsDuplicate(errors.New("other")))
	assert.False(t, IsInvalidReference(nil))
}
