package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// loadList deserializa la colección JSON guardada bajo key.
// Una clave ausente equivale a colección vacía.
func loadList[T any](ctx context.Context, q Querier, key string) ([]*T, error) {
	raw, err := getValue(ctx, q, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var list []*T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decodificar colección %q: %w", key, err)
	}
	return list, nil
}

// saveList serializa la colección completa bajo key.
func saveList[T any](ctx context.Context, q Querier, key string, list []*T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("codificar colección %q: %w", key, err)
	}
	return putValue(ctx, q, key, raw)
}
