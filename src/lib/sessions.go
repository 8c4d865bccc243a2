package lib

import (
	"context"
	"eventspot/src/config"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Sessions are opaque ids stored server-side in redis, mapping to the
// authenticated user id. TTL slides on every read.

func sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

func SessionCreate(ctx context.Context, userId uint) (string, error) {
	rd := GetRedisClient()
	sid := uuid.NewString()
	if err := rd.Set(ctx, sessionKey(sid), strconv.FormatUint(uint64(userId), 10), config.SESSION_TTL).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func SessionGet(ctx context.Context, sid string) (uint, error) {
	rd := GetRedisClient()
	key := sessionKey(sid)
	val, err := rd.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("session not found")
	} else if err != nil {
		return 0, err
	}
	userId, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid session payload: %s", err.Error())
	}
	rd.Expire(ctx, key, config.SESSION_TTL)
	return uint(userId), nil
}

func SessionDestroy(ctx context.Context, sid string) error {
	rd := GetRedisClient()
	return rd.Del(ctx, sessionKey(sid)).Err()
}
