package repository

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
)

// MessageRepository define el puerto de persistencia para el registro de chat.
type MessageRepository interface {
	Append(ctx context.Context, message *entity.ChatMessage) error
	List(ctx context.Context) ([]*entity.ChatMessage, error)
}
