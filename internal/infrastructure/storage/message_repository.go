package storage

import (
	"context"

	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación del puerto MessageRepository sobre la colección "chat_messages".
type MessageRepo struct {
	q Querier
}

// NewMessageRepository construye el adaptador de persistencia para el chat.
func NewMessageRepository(kv *KV) *MessageRepo {
	return &MessageRepo{q: kv.db}
}

// Append agrega el mensaje al final del registro.
func (r *MessageRepo) Append(ctx context.Context, message *entity.ChatMessage) error {
	messages, err := loadList[entity.ChatMessage](ctx, r.q, KeyChatMessages)
	if err != nil {
		return err
	}
	messages = append(messages, message)
	return saveList(ctx, r.q, KeyChatMessages, messages)
}

// List devuelve el registro completo en orden de inserción.
func (r *MessageRepo) List(ctx context.Context) ([]*entity.ChatMessage, error) {
	return loadList[entity.ChatMessage](ctx, r.q, KeyChatMessages)
}
