package category

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCategoryRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectExec(regexp.QuoteMeta(insertCategoryQuery)).
		WithArgs("Phones").
		WillReturnResult(sqlmock.NewResult(4, 1))

	got, err := repo.Create(context.Background(), &model.CategoryEntity{Name: "Phones"})
	require.NoError(t, err)
	assert.Equal(t, &model.CategoryEntity{ID: 4, Name: "Phones"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCategoryRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectQuery(regexp.QuoteMeta(getCategoryByIDQuery)).
		WithArgs(uint64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(4, "Phones"))
	mock.ExpectQuery(regexp.QuoteMeta(getCategoryByIDQuery)).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	got, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Phones", got.Name)

	missing, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
