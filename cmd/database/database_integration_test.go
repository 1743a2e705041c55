//go:build integration

package database_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/application/comment"
	"github.com/muhammadheryan/storefront/application/order"
	"github.com/muhammadheryan/storefront/cmd/database"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	categoryrepo "github.com/muhammadheryan/storefront/repository/category"
	commentrepo "github.com/muhammadheryan/storefront/repository/comment"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	productrepo "github.com/muhammadheryan/storefront/repository/product"
	regionrepo "github.com/muhammadheryan/storefront/repository/region"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	"go.uber.org/zap"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcmysql.Run(ctx, "mysql:8.0.36",
		tcmysql.WithDatabase("storefront"),
		tcmysql.WithUsername("storefront"),
		tcmysql.WithPassword("storefront"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "parseTime=true", "multiStatements=true")
	require.NoError(t, err)

	db, err := sqlx.Connect("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	// a second run is a no-op
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	regionID, userID, categoryID, productID uint64
}

func seed(t *testing.T, db *sqlx.DB, suffix string) fixture {
	t.Helper()
	ctx := context.Background()

	region, err := regionrepo.NewRegionRepository(db).Create(ctx, &model.RegionEntity{Name: "Region " + suffix})
	require.NoError(t, err)
	user, err := userrepo.NewUserRepository(db).Create(ctx, &model.UserEntity{
		Name:         "Seller",
		Email:        "seller" + suffix + "@example.com",
		Phone:        "998900000000",
		PasswordHash: "hash",
		Role:         constant.RoleSeller,
		Status:       constant.UserStatusActive,
		RegionID:     region.ID,
		Year:         1990,
	})
	require.NoError(t, err)
	category, err := categoryrepo.NewCategoryRepository(db).Create(ctx, &model.CategoryEntity{Name: "Category " + suffix})
	require.NoError(t, err)
	product, err := productrepo.NewProductRepository(db).Create(ctx, &model.ProductEntity{
		AuthorID:    user.ID,
		Name:        "Phone",
		Description: "Smart phone",
		Price:       500,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	return fixture{regionID: region.ID, userID: user.ID, categoryID: category.ID, productID: product.ID}
}

func TestRegionDeleteCascades(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	log := zap.NewNop()
	f := seed(t, db, "cascade")

	comments := commentrepo.NewCommentRepository(db)
	_, err := comments.Create(ctx, &model.CommentEntity{Text: "nice", Star: 5, ProductID: f.productID, UserID: f.userID})
	require.NoError(t, err)

	orderRepo := orderrepo.NewOrderRepository(db)
	placed, err := order.NewOrderApp(log, txrepo.NewTxRepository(db), orderRepo).
		CreateOrder(ctx, f.userID, &model.OrderRequest{ProductIDs: []uint64{f.productID}, Count: 2})
	require.NoError(t, err)
	require.Len(t, placed.Items, 1)
	assert.Equal(t, "Phone", placed.Items[0].Product.Name)

	require.NoError(t, regionrepo.NewRegionRepository(db).Delete(ctx, f.regionID))

	user, err := userrepo.NewUserRepository(db).Get(ctx, &model.UserFilter{ID: f.userID})
	require.NoError(t, err)
	assert.Nil(t, user)

	product, err := productrepo.NewProductRepository(db).GetByID(ctx, f.productID)
	require.NoError(t, err)
	assert.Nil(t, product)

	left, err := comments.ListByProductIDs(ctx, []uint64{f.productID})
	require.NoError(t, err)
	assert.Empty(t, left)

	gone, err := orderRepo.GetByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// the category is not owned by the region
	category, err := categoryrepo.NewCategoryRepository(db).GetByID(ctx, f.categoryID)
	require.NoError(t, err)
	assert.NotNil(t, category)
}

func TestConstraintErrors(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seed(t, db, "constraints")

	_, err := userrepo.NewUserRepository(db).Create(ctx, &model.UserEntity{
		Name:         "Dup",
		Email:        "sellerconstraints@example.com",
		Phone:        "1",
		PasswordHash: "hash",
		Role:         constant.RoleBuyer,
		Status:       constant.UserStatusPending,
		RegionID:     f.regionID,
		Year:         2000,
	})
	assert.True(t, mysqlerr.IsDuplicate(err), "got %v", err)

	_, err = order.NewOrderApp(zap.NewNop(), txrepo.NewTxRepository(db), orderrepo.NewOrderRepository(db)).
		CreateOrder(ctx, f.userID, &model.OrderRequest{ProductIDs: []uint64{f.productID, 999999}, Count: 1})
	assert.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidRequest))

	// the failed order left nothing behind
	orders, err := orderrepo.NewOrderRepository(db).ListByUser(ctx, f.userID, model.NewPage(10, 1))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestConcurrentCommentUpdatesLastWriteWins(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seed(t, db, "comments")

	repo := commentrepo.NewCommentRepository(db)
	app := comment.NewCommentApp(zap.NewNop(), repo)
	created, err := app.CreateComment(ctx, f.userID, &model.CommentRequest{Text: "first", ProductID: f.productID, Star: 3})
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := fmt.Sprintf("edit %d", i)
			_, err := app.UpdateComment(ctx, f.userID, created.ID, &model.UpdateCommentRequest{Text: &text})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	final, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, final)

	valid := make([]string, 0, writers)
	for i := 0; i < writers; i++ {
		valid = append(valid, fmt.Sprintf("edit %d", i))
	}
	assert.Contains(t, valid, final.Text)
	assert.Equal(t, float64(3), final.Star)
}
