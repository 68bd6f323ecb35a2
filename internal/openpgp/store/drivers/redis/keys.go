package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
)

// maxTxRetries bounds the optimistic retry loop when concurrent writers
// race on the same key.
const maxTxRetries = 5

// errUnchanged signals that a mutation found nothing to do, so the stored
// record must not be rewritten.
var errUnchanged = errors.New("unchanged")

type keysRepo struct {
	client *redis.Client
	prefix string
}

func (r *keysRepo) key(name string) string {
	return r.prefix + ":key:" + name
}

func (r *keysRepo) Create(ctx context.Context, k domain.Key) error {
	data, err := json.Marshal(k)
	if err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.key(k.Name), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to store key: %w", err)
	}
	if !ok {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *keysRepo) Get(ctx context.Context, name string) (domain.Key, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Key{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Key{}, fmt.Errorf("failed to fetch key: %w", err)
	}

	var k domain.Key
	if err := json.Unmarshal(data, &k); err != nil {
		return domain.Key{}, fmt.Errorf("failed to decode stored key %q: %w", name, err)
	}
	return k, nil
}

func (r *keysRepo) List(ctx context.Context) ([]string, error) {
	prefix := r.key("")

	var names []string
	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}

	// SCAN order is unspecified.
	sort.Strings(names)
	return names, nil
}

func (r *keysRepo) Delete(ctx context.Context, name string) error {
	return r.client.Del(ctx, r.key(name)).Err()
}

func (r *keysRepo) AddSubkey(ctx context.Context, name string, sub domain.Subkey, publicKey string, privateKey []byte) error {
	return r.update(ctx, name, false, func(k *domain.Key) error {
		if _, ok := k.Subkey(sub.KeyID); ok {
			return store.ErrAlreadyExists
		}
		k.PublicKey = publicKey
		k.PrivateKey = privateKey
		k.Subkeys = append(k.Subkeys, sub)
		return nil
	})
}

func (r *keysRepo) RemoveSubkey(ctx context.Context, name, keyID string, publicKey string, privateKey []byte) error {
	return r.update(ctx, name, true, func(k *domain.Key) error {
		var kept []domain.Subkey
		removed := false
		for _, sk := range k.Subkeys {
			if sk.KeyID == keyID {
				removed = true
				continue
			}
			kept = append(kept, sk)
		}
		if !removed {
			return errUnchanged
		}
		k.Subkeys = kept
		k.PublicKey = publicKey
		k.PrivateKey = privateKey
		return nil
	})
}

// update applies mutate to the stored record under optimistic concurrency:
// the watched key aborts the transaction when another writer touches it
// between read and commit, and the whole attempt is retried.
func (r *keysRepo) update(ctx context.Context, name string, missingOK bool, mutate func(k *domain.Key) error) error {
	key := r.key(name)

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			if missingOK {
				return nil
			}
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}

		var k domain.Key
		if err := json.Unmarshal(data, &k); err != nil {
			return fmt.Errorf("failed to decode stored key %q: %w", name, err)
		}

		if err := mutate(&k); err != nil {
			if errors.Is(err, errUnchanged) {
				return nil
			}
			return err
		}

		out, err := json.Marshal(k)
		if err != nil {
			return fmt.Errorf("failed to encode key: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("failed to update key %q after %d retries", name, maxTxRetries)
}
