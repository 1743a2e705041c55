package transport_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authapp "github.com/muhammadheryan/storefront/application/auth"
	categoryapp "github.com/muhammadheryan/storefront/application/category"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	authmocks "github.com/muhammadheryan/storefront/mocks/application/auth"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/thirdparty/storage"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/otp"
	"github.com/muhammadheryan/storefront/utils/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type client struct {
	t       *testing.T
	handler http.Handler
}

func (c client) do(method, path, bearer string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRegisterVerifyLoginAndRoleGate(t *testing.T) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users := newMemUsers(model.UserEntity{
		ID:           1,
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(adminHash),
		Role:         constant.RoleAdmin,
		Status:       constant.UserStatusActive,
		RegionID:     1,
	})
	box := &codeBox{}

	cfg := &config.Config{OTP: config.OTPConfig{MaxAttempts: 5, AttemptWindow: time.Minute}}
	fixed := time.Date(2024, 5, 1, 10, 0, 30, 0, time.UTC)
	engine := otp.NewWithClock("salt", time.Minute, func() time.Time { return fixed })
	issuer, err := token.New(token.Config{
		AccessSecret:      "a-secret",
		RefreshSecret:     "r-secret",
		AccessExpiration:  time.Minute,
		RefreshExpiration: time.Hour,
	})
	require.NoError(t, err)

	log := zap.NewNop()
	handler := transport.NewTransport(&transport.RestHandler{
		AuthApp:     authapp.NewAuthApp(cfg, log, users, redisrepo.NewRepository(nil), engine, issuer, box),
		CategoryApp: categoryapp.NewCategoryApp(log, &memCategories{}),
		Log:         log,
	})
	c := client{t: t, handler: handler}

	register := map[string]any{
		"name":      "Buyer",
		"email":     "buyer@example.com",
		"phone":     "998901234567",
		"password":  "buyer-pass",
		"year":      1999,
		"region_id": 1,
	}
	rec := c.do(http.MethodPost, "/auth/register", "", register)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, authapp.MessageOTPSent, decode[model.MessageResponse](t, rec).Message)
	code := box.last("buyer@example.com")
	require.NotEmpty(t, code)

	rec = c.do(http.MethodPost, "/auth/register", "", map[string]any{"email": "bad"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// pending accounts get a message instead of tokens
	rec = c.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "buyer@example.com", "password": "buyer-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	pending := decode[model.LoginResponse](t, rec)
	assert.Equal(t, authapp.MessageUnverified, pending.Message)
	assert.Empty(t, pending.AccessToken)

	rec = c.do(http.MethodPost, "/auth/verify", "", map[string]any{"email": "buyer@example.com", "otp": "abcdef"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidOTP], decode[transport.ErrorResponse](t, rec).Code)

	rec = c.do(http.MethodPost, "/auth/verify", "", map[string]any{"email": "buyer@example.com", "otp": code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, authapp.MessageVerified, decode[model.MessageResponse](t, rec).Message)

	rec = c.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "buyer@example.com", "password": "wrong-pass"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = c.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "buyer@example.com", "password": "buyer-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	buyer := decode[model.LoginResponse](t, rec)
	require.NotEmpty(t, buyer.AccessToken)
	require.NotEmpty(t, buyer.RefreshToken)

	rec = c.do(http.MethodPost, "/auth/access-token", "", map[string]any{"refresh_token": buyer.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[model.AccessTokenResponse](t, rec).AccessToken)

	rec = c.do(http.MethodPost, "/categories", "", map[string]any{"name": "Phones"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], decode[transport.ErrorResponse](t, rec).Code)

	rec = c.do(http.MethodPost, "/categories", "garbage", map[string]any{"name": "Phones"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidToken], decode[transport.ErrorResponse](t, rec).Code)

	rec = c.do(http.MethodPost, "/categories", buyer.AccessToken, map[string]any{"name": "Phones"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = c.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "admin@example.com", "password": "admin-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	admin := decode[model.LoginResponse](t, rec)

	rec = c.do(http.MethodPost, "/categories", admin.AccessToken, map[string]any{"name": "Phones"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, model.CategoryEntity{ID: 1, Name: "Phones"}, decode[model.CategoryEntity](t, rec))

	rec = c.do(http.MethodPost, "/categories", admin.AccessToken, map[string]any{"name": "Phones"})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = c.do(http.MethodGet, "/categories/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.CategoryEntity](t, rec), 1)
}

func TestUploadAndServeImage(t *testing.T) {
	disk, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)

	authApp := authmocks.NewAuthApp(t)
	authApp.On("Authenticate", mock.Anything, "tok").
		Return(&model.AccessClaims{UserID: 1, Role: constant.RoleBuyer, Status: constant.UserStatusActive}, nil).
		Once()

	handler := transport.NewTransport(&transport.RestHandler{
		AuthApp:       authApp,
		Storage:       disk,
		PublicBaseURL: "http://localhost:3002/",
		MaxUploadSize: 1 << 20,
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("rasm", "Photo.PNG")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[model.UploadResponse](t, rec)
	require.True(t, strings.HasPrefix(res.URL, "http://localhost:3002/image/"), res.URL)
	require.True(t, strings.HasSuffix(res.URL, ".png"), res.URL)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, strings.TrimPrefix(res.URL, "http://localhost:3002"), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/image/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
