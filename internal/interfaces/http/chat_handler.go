package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventoree/inventoree-api/internal/application/chat"
	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/domain"
)

// ChatHandler registro de mensajes local.
type ChatHandler struct {
	uc *chat.ChatUseCase
}

// NewChatHandler construye el handler de chat.
func NewChatHandler(uc *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Session godoc
// @Summary      Identidad visible del chat (vacía si nunca hubo login)
// @Tags         chat
// @Produce      json
// @Success      200  {object}  dto.IdentityResponse
// @Router       /api/chat/session [get]
func (h *ChatHandler) Session(c *fiber.Ctx) error {
	identity, err := h.uc.LoadSession(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(identity)
}

// Send godoc
// @Summary      Agregar mensaje al registro local
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMessageRequest  true  "text y/o images"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chat/messages [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	message, err := h.uc.SendMessage(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el mensaje requiere texto o imágenes"})
		}
		if errors.Is(err, domain.ErrNotIdentified) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_IDENTIFIED", Message: "no hay identidad guardada para el chat"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// History godoc
// @Summary      Historial completo del chat en orden de inserción
// @Tags         chat
// @Produce      json
// @Success      200  {array}  dto.MessageResponse
// @Router       /api/chat/messages [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	messages, err := h.uc.LoadHistory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(messages)
}
