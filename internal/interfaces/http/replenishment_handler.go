package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/dto"
	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
)

// ReplenishmentHandler sugestão de dosagem e plano de reposição.
type ReplenishmentHandler struct {
	svc *inventory.Service
}

func NewReplenishmentHandler(svc *inventory.Service) *ReplenishmentHandler {
	return &ReplenishmentHandler{svc: svc}
}

// DosageSuggestion godoc
// @Summary      Quantidade mensal sugerida
// @Description  Interpreta dosagem e frequência em texto livre; sem padrão reconhecido sugere 30.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DosageSuggestionRequest  true  "dosagem e frequência"
// @Success      200   {object}  dosage.Estimate
// @Router       /api/dosage/suggestion [post]
func (h *ReplenishmentHandler) DosageSuggestion(c *fiber.Ctx) error {
	var in dto.DosageSuggestionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.svc.SuggestedMonthlyQuantity(in.Dosage, in.Frequency))
}

// BuildPlan godoc
// @Summary      Plano de reposição
// @Description  Pares com saldo pessoal <= 5 e prescrição ativa, por produto e por residente.
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ReplenishmentPlanRequest  false  "quantidades manuais"
// @Success      200   {object}  replenishment.Plan
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment/plan [post]
func (h *ReplenishmentHandler) BuildPlan(c *fiber.Ctx) error {
	in, err := planRequest(c)
	if err != nil {
		return badBody(c)
	}
	plan, err := h.svc.BuildReplenishmentPlan(c.UserContext(), in.Overrides)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(plan)
}

// PlanPDF godoc
// @Summary      Plano de reposição em PDF
// @Tags         replenishment
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ReplenishmentPlanRequest  false  "quantidades manuais"
// @Success      200
// @Router       /api/replenishment/plan.pdf [post]
func (h *ReplenishmentHandler) PlanPDF(c *fiber.Ctx) error {
	in, err := planRequest(c)
	if err != nil {
		return badBody(c)
	}
	doc, err := h.svc.ReplenishmentPlanPDF(c.UserContext(), in.Overrides)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reposicao.pdf"`)
	return c.Send(doc)
}

// planRequest corpo opcional: vazio equivale a nenhuma quantidade manual.
func planRequest(c *fiber.Ctx) (dto.ReplenishmentPlanRequest, error) {
	var in dto.ReplenishmentPlanRequest
	if len(c.Body()) == 0 {
		return in, nil
	}
	err := c.BodyParser(&in)
	return in, err
}
