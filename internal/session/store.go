// Package session persists the authentication token and cached identity
// fields between runs. Three string keys, all optional until a login writes
// them; Clear drops all of them at once.
package session

import "context"

type UserInfo struct {
	Email    string
	Nickname string
}

// Store is the persistent key-value collaborator behind the auth layer.
// Implementations must serialize access per key; absent values come back as
// empty strings, never as errors.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	UserInfo(ctx context.Context) (UserInfo, error)
	SetUserInfo(ctx context.Context, email, nickname string) error
	Clear(ctx context.Context) error
}
