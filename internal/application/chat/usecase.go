// Package chat contiene el caso de uso del registro de mensajes local:
// un log append-only de un solo dispositivo, sin entrega multi-usuario.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
	"github.com/inventoree/inventoree-api/internal/domain/entity"
	"github.com/inventoree/inventoree-api/internal/domain/repository"
)

// ChatUseCase mensajes del chat local ligados a la identidad guardada.
type ChatUseCase struct {
	messages repository.MessageRepository
	session  repository.SessionRepository
}

// NewChatUseCase construye el caso de uso.
func NewChatUseCase(messages repository.MessageRepository, session repository.SessionRepository) *ChatUseCase {
	return &ChatUseCase{messages: messages, session: session}
}

// LoadSession devuelve la identidad visible del chat; campos vacíos si
// nunca se inició sesión.
func (uc *ChatUseCase) LoadSession(ctx context.Context) (*dto.IdentityResponse, error) {
	name, email, err := uc.session.LoadIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.IdentityResponse{Name: name, Email: email}, nil
}

// SendMessage agrega un mensaje al registro con la hora del reloj local.
// Requiere texto o imágenes (ErrInvalidInput) y una identidad guardada
// (ErrNotIdentified).
func (uc *ChatUseCase) SendMessage(ctx context.Context, in dto.SendMessageRequest) (*dto.MessageResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && len(in.Images) == 0 {
		return nil, domain.ErrInvalidInput
	}
	name, email, err := uc.session.LoadIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" || email == "" {
		return nil, domain.ErrNotIdentified
	}

	now := time.Now()
	message := &entity.ChatMessage{
		ID:     uuid.New().String(),
		Sender: name,
		Text:   text,
		Images: in.Images,
		Time:   now.Format("15:04"),
		Date:   now.Format("Mon Jan 02 2006"),
		IsMe:   true,
		Avatar: avatarFor(name),
		Email:  email,
	}
	if err := uc.messages.Append(ctx, message); err != nil {
		return nil, err
	}
	return toMessageResponse(message), nil
}

// LoadHistory devuelve el registro completo en orden de inserción.
func (uc *ChatUseCase) LoadHistory(ctx context.Context) ([]dto.MessageResponse, error) {
	messages, err := uc.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, *toMessageResponse(m))
	}
	return out, nil
}

// avatarFor deriva la inicial que muestra la app junto al mensaje.
func avatarFor(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(trimmed)[0]))
}

func toMessageResponse(m *entity.ChatMessage) *dto.MessageResponse {
	if m == nil {
		return nil
	}
	return &dto.MessageResponse{
		ID:     m.ID,
		Sender: m.Sender,
		Text:   m.Text,
		Images: m.Images,
		Time:   m.Time,
		Date:   m.Date,
		IsMe:   m.IsMe,
		Avatar: m.Avatar,
		Email:  m.Email,
	}
}
