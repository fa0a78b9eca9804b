package session

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	keyToken    = "jwt_token"
	keyEmail    = "user_email"
	keyNickname = "user_nickname"
)

// RedisStore keeps the session under a fixed key prefix. Values have no TTL;
// the backend decides token validity, the store only remembers it.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if strings.TrimSpace(prefix) == "" {
		prefix = "veil:session:"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// NewRedisStoreURL dials the redis instance described by url
// (redis://host:port/db).
func NewRedisStoreURL(url, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(redis.NewClient(opts), prefix), nil
}

func (s *RedisStore) key(name string) string { return s.prefix + name }

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	v, err := s.rdb.Get(ctx, s.key(keyToken)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	return s.rdb.Set(ctx, s.key(keyToken), token, 0).Err()
}

func (s *RedisStore) UserInfo(ctx context.Context) (UserInfo, error) {
	vals, err := s.rdb.MGet(ctx, s.key(keyEmail), s.key(keyNickname)).Result()
	if err != nil {
		return UserInfo{}, err
	}
	var info UserInfo
	if v, ok := vals[0].(string); ok {
		info.Email = v
	}
	if v, ok := vals[1].(string); ok {
		info.Nickname = v
	}
	return info, nil
}

func (s *RedisStore) SetUserInfo(ctx context.Context, email, nickname string) error {
	return s.rdb.MSet(ctx, s.key(keyEmail), email, s.key(keyNickname), nickname).Err()
}

// Clear removes all three keys in a single DEL so a reader never observes a
// token without its identity fields after logout.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, s.key(keyToken), s.key(keyEmail), s.key(keyNickname)).Err()
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
