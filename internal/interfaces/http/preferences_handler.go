package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/inventoree/inventoree-api/internal/application/dto"
	"github.com/inventoree/inventoree-api/internal/application/usecase"
	"github.com/inventoree/inventoree-api/internal/domain"
)

// PreferencesHandler tema y toggles de usuario.
type PreferencesHandler struct {
	uc *usecase.PreferencesUseCase
}

// NewPreferencesHandler construye el handler de preferencias.
func NewPreferencesHandler(uc *usecase.PreferencesUseCase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

// GetTheme godoc
// @Summary      Tema activo ("light" si nunca se eligió)
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/preferences/theme [get]
func (h *PreferencesHandler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.uc.GetTheme(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(theme)
}

// SetTheme godoc
// @Summary      Cambiar el tema ("light" | "dark")
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetThemeRequest  true  "tema"
// @Success      200   {object}  dto.ThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/preferences/theme [put]
func (h *PreferencesHandler) SetTheme(c *fiber.Ctx) error {
	var in dto.SetThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	theme, err := h.uc.SetTheme(c.Context(), in.Theme)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tema desconocido; use light o dark"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(theme)
}

// Get godoc
// @Summary      Toggles de usuario (valores cero si nunca se guardaron)
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/preferences [get]
func (h *PreferencesHandler) Get(c *fiber.Ctx) error {
	prefs, err := h.uc.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(prefs)
}

// Update godoc
// @Summary      Modificar toggles de usuario
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePreferencesRequest  true  "toggles a modificar"
// @Success      200   {object}  dto.PreferencesResponse
// @Router       /api/preferences [put]
func (h *PreferencesHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePreferencesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prefs, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(prefs)
}
