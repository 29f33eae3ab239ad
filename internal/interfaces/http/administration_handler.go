package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
)

// AdministrationHandler administração de doses.
type AdministrationHandler struct {
	svc *inventory.Service
}

func NewAdministrationHandler(svc *inventory.Service) *AdministrationHandler {
	return &AdministrationHandler{svc: svc}
}

// Administer godoc
// @Summary      Administrar dose agora
// @Description  Lança a saída da dose com a data de hoje. Tratamento com saldo esgotado é encerrado.
// @Tags         administration
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID da prescrição"
// @Success      201  {object}  administration.Result
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/prescriptions/{id}/administer [post]
func (h *AdministrationHandler) Administer(c *fiber.Ctx) error {
	res, err := h.svc.AdministerNow(actorContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// AdministeredToday godoc
// @Summary      Dose já administrada hoje?
// @Tags         administration
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID da prescrição"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prescriptions/{id}/administered-today [get]
func (h *AdministrationHandler) AdministeredToday(c *fiber.Ctx) error {
	done, err := h.svc.AdministeredToday(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"prescription_id": c.Params("id"), "date": h.svc.Today(), "administered": done})
}
