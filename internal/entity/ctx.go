package entity

import "context"

type CtxKeyUser struct{}

// SessionUser is the authenticated caller carried in the request context.
type SessionUser struct {
	ID        int64  `json:"id"`
	RoleID    int64  `json:"role_id"`
	FirstName string `json:"first_name"`
}

func (u SessionUser) IsAdmin() bool {
	return u.RoleID == RoleIDAdmin
}

func UserFromContext(ctx context.Context) (SessionUser, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(SessionUser)
	if !ok {
		return SessionUser{}, ErrUnauthorized
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user SessionUser) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}
