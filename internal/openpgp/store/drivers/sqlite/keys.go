package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
)

type keysRepo struct {
	db *sql.DB
}

func (r *keysRepo) Create(ctx context.Context, k domain.Key) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO openpgp_keys (
			name, key_type, fingerprint, public_key, private_key,
			exportable, real_name, email, created_at, expires_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		k.Name, string(k.KeyType), k.Fingerprint, k.PublicKey, k.PrivateKey,
		k.Exportable, k.RealName, k.Email, k.CreatedAt, mapOptionalTime(k.ExpiresAt),
	)
	if err := mapConflict(err); err != nil {
		if err == store.ErrAlreadyExists {
			return err
		}
		return fmt.Errorf("failed to insert key: %w", err)
	}
	return nil
}

func (r *keysRepo) Get(ctx context.Context, name string) (domain.Key, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, key_type, fingerprint, public_key, private_key,
		       exportable, real_name, email, created_at, expires_at
		FROM openpgp_keys
		WHERE name = ?`, name)

	k, err := scanKey(row)
	if err != nil {
		return domain.Key{}, mapNotFound(err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT key_id, key_type, fingerprint, created_at, expires_at
		FROM openpgp_subkeys
		WHERE key_name = ?
		ORDER BY created_at, key_id`, name)
	if err != nil {
		return domain.Key{}, fmt.Errorf("failed to query subkeys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sub     domain.Subkey
			keyType string
			expires sql.NullTime
		)
		if err := rows.Scan(&sub.KeyID, &keyType, &sub.Fingerprint, &sub.CreatedAt, &expires); err != nil {
			return domain.Key{}, fmt.Errorf("failed to scan subkey: %w", err)
		}
		sub.KeyType = domain.KeyType(keyType)
		sub.ExpiresAt = mapNullTimePtr(expires)
		k.Subkeys = append(k.Subkeys, sub)
	}
	if err := rows.Err(); err != nil {
		return domain.Key{}, err
	}

	return k, nil
}

func (r *keysRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM openpgp_keys ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *keysRepo) Delete(ctx context.Context, name string) error {
	// The schema also cascades, but the explicit pair keeps the aggregate
	// delete atomic on connections that never saw the foreign_keys pragma.
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM openpgp_subkeys WHERE key_name = ?`, name); err != nil {
			return fmt.Errorf("failed to delete subkeys: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM openpgp_keys WHERE name = ?`, name); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}
		return nil
	})
}

func (r *keysRepo) AddSubkey(ctx context.Context, name string, sub domain.Subkey, publicKey string, privateKey []byte) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE openpgp_keys SET public_key = ?, private_key = ? WHERE name = ?`,
			publicKey, privateKey, name)
		if err != nil {
			return fmt.Errorf("failed to update key material: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return store.ErrNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO openpgp_subkeys (
				key_name, key_id, key_type, fingerprint, created_at, expires_at
			) VALUES (?, ?, ?, ?, ?, ?)`,
			name, sub.KeyID, string(sub.KeyType), sub.Fingerprint,
			sub.CreatedAt, mapOptionalTime(sub.ExpiresAt),
		)
		if err := mapConflict(err); err != nil {
			if err == store.ErrAlreadyExists {
				return err
			}
			return fmt.Errorf("failed to insert subkey: %w", err)
		}
		return nil
	})
}

func (r *keysRepo) RemoveSubkey(ctx context.Context, name, keyID string, publicKey string, privateKey []byte) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM openpgp_subkeys WHERE key_name = ? AND key_id = ?`,
			name, keyID)
		if err != nil {
			return fmt.Errorf("failed to delete subkey: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			// Nothing removed, keep the stored material as is.
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE openpgp_keys SET public_key = ?, private_key = ? WHERE name = ?`,
			publicKey, privateKey, name)
		if err != nil {
			return fmt.Errorf("failed to update key material: %w", err)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKey(row rowScanner) (domain.Key, error) {
	var (
		k       domain.Key
		keyType string
		expires sql.NullTime
	)
	err := row.Scan(&k.Name, &keyType, &k.Fingerprint, &k.PublicKey, &k.PrivateKey,
		&k.Exportable, &k.RealName, &k.Email, &k.CreatedAt, &expires)
	if err != nil {
		return domain.Key{}, err
	}
	k.KeyType = domain.KeyType(keyType)
	k.ExpiresAt = mapNullTimePtr(expires)
	return k, nil
}
