// Package session реализует серверное хранилище сессий на Redis.
// Токен сессии непрозрачен: 32 случайных байта в hex, никаких встроенных
// клеймов — сервер всегда ищет токен в хранилище, подделать его содержимое
// невозможно. Истёкший или неизвестный токен разрешается в "нет сессии",
// а не в ошибку: для вызывающего это эквивалент анонимного запроса.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexusgrowth/client-portal/internal/config"
)

const keyPrefix = "session:"

// Store хранит сессии в Redis с TTL.
type Store struct {
	db  *redis.Client
	ttl time.Duration
}

// New подключается к Redis и возвращает хранилище сессий.
func New(ctx context.Context, cfg config.RedisConnection, ttl time.Duration) (*Store, error) {
	const op = "session.New"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{db: db, ttl: ttl}, nil
}

// Create создаёт сессию для пользователя и возвращает её токен.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	const op = "session.Create"

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	token := hex.EncodeToString(raw)

	if err := s.db.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Resolve возвращает id пользователя по токену. Для неизвестного или
// истёкшего токена возвращает ok=false без ошибки.
func (s *Store) Resolve(ctx context.Context, token string) (string, bool, error) {
	const op = "session.Resolve"
	if token == "" {
		return "", false, nil
	}
	userID, err := s.db.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return userID, true, nil
}

// Destroy удаляет сессию. Удаление несуществующего токена не является ошибкой.
func (s *Store) Destroy(ctx context.Context, token string) error {
	const op = "session.Destroy"
	if err := s.db.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (s *Store) Close() error {
	return s.db.Close()
}
