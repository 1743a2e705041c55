package region

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

func TestSQL_CreateAndList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegionRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectExec(regexp.QuoteMeta(insertRegionQuery)).
		WithArgs("Tashkent").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery(regexp.QuoteMeta(listRegionsQuery)).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Tashkent"))

	created, err := repo.Create(context.Background(), &model.RegionEntity{Name: "Tashkent"})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), created.ID)

	list, err := repo.List(context.Background(), model.NewPage(10, 1))
	require.NoError(t, err)
	assert.Equal(t, []model.RegionEntity{{ID: 3, Name: "Tashkent"}}, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetByName_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRegionRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectQuery(regexp.QuoteMeta(getRegionByNameQuery)).
		WithArgs("Nowhere").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	got, err := repo.GetByName(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
