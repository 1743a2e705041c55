package comment_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	appcomment "github.com/muhammadheryan/storefront/application/comment"
	"github.com/muhammadheryan/storefront/model"
	commentrepo "github.com/muhammadheryan/storefront/repository/comment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCommentApp_CreateComment_ServerTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := appcomment.NewCommentApp(zap.NewNop(), commentrepo.NewCommentRepository(sqlx.NewDb(db, "mysql")))
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments (text, star, product_id, user_id, created_at) VALUES (?, ?, ?, ?, NOW())")).
		WithArgs("great", 5.0, uint64(7), uint64(3)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE id = ?")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "star", "product_id", "user_id", "created_at"}).
			AddRow(11, "great", 5.0, 7, 3, created))

	got, err := app.CreateComment(context.Background(), 3, &model.CommentRequest{Text: "great", ProductID: 7, Star: 5})
	require.NoError(t, err)
	assert.Equal(t, uint64(11), got.ID)
	assert.Equal(t, uint64(3), got.UserID)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
