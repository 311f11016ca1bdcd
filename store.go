package goRBAC

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MrEthical07/goRBAC/role"
	"github.com/redis/go-redis/v9"
)

// storageNamespace is the human-readable anchor for the principal→bitmap
// mapping. The default Redis key prefix is derived from its hash so the
// engine's keys cannot collide with other state in a shared Redis. Changing
// the string orphans all stored bitmaps; bump the version suffix only with a
// migration.
const storageNamespace = "goRBAC.store.roles.v1"

const roleRecordVersionV1 = 1

var errRoleRecordInvalid = errors.New("invalid role record")

// defaultRedisPrefix returns the first eight bytes of SHA-256(storageNamespace)
// in hex. Stable across releases by construction.
func defaultRedisPrefix() string {
	sum := sha256.Sum256([]byte(storageNamespace))
	return hex.EncodeToString(sum[:8])
}

// RoleStore is the injectable persistence handle for the principal→bitmap
// mapping. A missing entry loads as the zero Role; storing the zero Role is
// equivalent to deleting the entry. Update must apply the mutation atomically
// with respect to other mutators of the same principal.
type RoleStore interface {
	Load(ctx context.Context, principal string) (role.Role, error)
	Update(ctx context.Context, principal string, apply func(role.Role) role.Role) (role.Role, error)
}

type redisRoleStore struct {
	redis   *redis.Client
	prefix  string
	retries int
}

func newRedisRoleStore(client *redis.Client, cfg StoreConfig) *redisRoleStore {
	prefix := cfg.RedisPrefix
	if prefix == "" {
		prefix = defaultRedisPrefix()
	}
	retries := cfg.WatchRetries
	if retries <= 0 {
		retries = 4
	}
	return &redisRoleStore{
		redis:   client,
		prefix:  prefix,
		retries: retries,
	}
}

func (s *redisRoleStore) key(principal string) string {
	return s.prefix + ":" + principal
}

func (s *redisRoleStore) Load(ctx context.Context, principal string) (role.Role, error) {
	data, err := s.redis.Get(ctx, s.key(principal)).Bytes()
	if errors.Is(err, redis.Nil) {
		return role.Role{}, nil
	}
	if err != nil {
		return role.Role{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return decodeRoleRecord(data)
}

// Update applies the mutation under WATCH so concurrent mutators of the same
// principal cannot lose bits. A resulting zero bitmap deletes the key, which
// keeps "all roles revoked" indistinguishable from "never assigned".
func (s *redisRoleStore) Update(ctx context.Context, principal string, apply func(role.Role) role.Role) (role.Role, error) {
	key := s.key(principal)

	for i := 0; i < s.retries; i++ {
		var updated role.Role

		err := s.redis.Watch(ctx, func(tx *redis.Tx) error {
			var current role.Role

			data, err := tx.Get(ctx, key).Bytes()
			switch {
			case errors.Is(err, redis.Nil):
			case err != nil:
				return err
			default:
				current, err = decodeRoleRecord(data)
				if err != nil {
					return err
				}
			}

			updated = apply(current)

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if updated.IsZero() {
					pipe.Del(ctx, key)
					return nil
				}
				pipe.Set(ctx, key, encodeRoleRecord(updated), 0)
				return nil
			})
			return err
		}, key)

		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			if errors.Is(err, errRoleRecordInvalid) || errors.Is(err, ErrStoreUnavailable) {
				return role.Role{}, err
			}
			return role.Role{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		return updated, nil
	}

	return role.Role{}, fmt.Errorf("%w: optimistic retries exhausted", ErrStoreUnavailable)
}

func encodeRoleRecord(r role.Role) []byte {
	out := make([]byte, 0, 1+role.EncodedSize)
	out = append(out, roleRecordVersionV1)
	b := r.Bytes()
	return append(out, b[:]...)
}

func decodeRoleRecord(data []byte) (role.Role, error) {
	if len(data) != 1+role.EncodedSize {
		return role.Role{}, fmt.Errorf("%w: length %d", errRoleRecordInvalid, len(data))
	}
	if data[0] != roleRecordVersionV1 {
		return role.Role{}, fmt.Errorf("%w: version %d", errRoleRecordInvalid, data[0])
	}
	r, err := role.FromBytes(data[1:])
	if err != nil {
		return role.Role{}, fmt.Errorf("%w: %v", errRoleRecordInvalid, err)
	}
	return r, nil
}
