package context

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

func WithClaims(ctx context.Context, claims *model.AccessClaims) context.Context {
	return context.WithValue(ctx, constant.ClaimsKey, claims)
}

func GetClaims(ctx context.Context) (*model.AccessClaims, bool) {
	v := ctx.Value(constant.ClaimsKey)
	if v == nil {
		return nil, false
	}
	claims, ok := v.(*model.AccessClaims)
	return claims, ok
}

func GetUserID(ctx context.Context) (uint64, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
