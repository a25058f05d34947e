// Package storage implementa la persistencia local del dispositivo: un
// almacén clave-valor sobre sqlite embebido donde cada colección se guarda
// como un blob JSON bajo una clave fija.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Claves fijas del almacenamiento. El layout replica el que ya existe en los
// dispositivos, por eso los nombres van en snake_case.
const (
	KeyUsers            = "users"
	KeyCurrentUser      = "current_user"
	KeyCurrentToken     = "current_token"
	KeyProducts         = "products"
	KeyCategories       = "categories"
	KeySuppliers        = "suppliers"
	KeySales            = "sales"
	KeyChatMessages     = "chat_messages"
	KeyCurrentUserName  = "current_user_name"
	KeyCurrentUserEmail = "current_user_email"
	KeyTheme            = "theme"
	KeyUserPreferences  = "user_preferences"
)

// Querier abstrae *sql.DB y *sql.Tx para que los repositorios funcionen
// igual dentro y fuera de una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// KV almacén clave-valor persistente (archivo sqlite local).
type KV struct {
	db *sql.DB
}

// Open abre (o crea) el archivo sqlite y prepara la tabla kv.
func Open(path string) (*KV, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("abrir almacenamiento: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear tabla kv: %w", err)
	}
	return &KV{db: db}, nil
}

// Close cierra el archivo subyacente.
func (s *KV) Close() error { return s.db.Close() }

// Get devuelve el valor de la clave, o nil si nunca se escribió.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	return getValue(ctx, s.db, key)
}

// Put escribe (o reemplaza) el valor de la clave.
func (s *KV) Put(ctx context.Context, key string, value []byte) error {
	return putValue(ctx, s.db, key, value)
}

// Delete elimina la clave. Borrar una clave inexistente no es error.
func (s *KV) Delete(ctx context.Context, key string) error {
	return deleteValue(ctx, s.db, key)
}

func getValue(ctx context.Context, q Querier, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, nil
}

func putValue(ctx context.Context, q Querier, key string, value []byte) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("kv put %q: %w", key, err)
	}
	return nil
}

func deleteValue(ctx context.Context, q Querier, key string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}
