package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/storefront/constant"
	authmocks "github.com/muhammadheryan/storefront/mocks/application/auth"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/transport"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		roles      []constant.Role
		mockCall   func(m *authmocks.AuthApp)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:       "not a bearer header",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			mockCall: func(m *authmocks.AuthApp) {
				m.On("Authenticate", mock.Anything, "broken").Return(nil, cerr.SetCustomError(constant.ErrInvalidToken)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidToken],
		},
		{
			name:   "unverified account",
			header: "Bearer pending",
			mockCall: func(m *authmocks.AuthApp) {
				m.On("Authenticate", mock.Anything, "pending").Return(nil, cerr.SetCustomError(constant.ErrUnverified)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnverified],
		},
		{
			name:   "role not allowed",
			header: "Bearer buyer",
			roles:  []constant.Role{constant.RoleAdmin, constant.RoleSeller},
			mockCall: func(m *authmocks.AuthApp) {
				m.On("Authenticate", mock.Anything, "buyer").
					Return(&model.AccessClaims{UserID: 3, Role: constant.RoleBuyer, Status: constant.UserStatusActive}, nil).
					Once()
			},
			wantStatus: http.StatusForbidden,
			wantCode:   constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name:   "allowed",
			header: "Bearer seller",
			roles:  []constant.Role{constant.RoleAdmin, constant.RoleSeller},
			mockCall: func(m *authmocks.AuthApp) {
				m.On("Authenticate", mock.Anything, "seller").
					Return(&model.AccessClaims{UserID: 4, Role: constant.RoleSeller, Status: constant.UserStatusActive}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			authApp := authmocks.NewAuthApp(t)
			if tt.mockCall != nil {
				tt.mockCall(authApp)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := utilsContext.GetUserID(r.Context())
				assert.True(t, ok)
				assert.Equal(t, uint64(4), id)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			transport.AuthMiddleware(authApp, tt.roles...)(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var body transport.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}

func TestInternalMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		key        string
		header     string
		wantStatus int
	}{
		{name: "right key", key: "k1", header: "Bearer k1", wantStatus: http.StatusOK},
		{name: "wrong key", key: "k1", header: "Bearer k2", wantStatus: http.StatusForbidden},
		{name: "no header", key: "k1", wantStatus: http.StatusForbidden},
		{name: "unset key locks the endpoint", key: "", header: "Bearer ", wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			transport.InternalMiddleware(tt.key)(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
