package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-Residencial-api/internal/application/dto"
	"github.com/jhoicas/Estoque-Residencial-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-Residencial-api/internal/domain"
)

// LedgerHandler movimentações, saldos e verificação do ledger.
type LedgerHandler struct {
	svc *inventory.Service
}

func NewLedgerHandler(svc *inventory.Service) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// RecordMovement godoc
// @Summary      Registrar movimentação
// @Description  Entrada (IN) ou saída (OUT). resident_id vazio = estoque da casa. date vazio = hoje.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.MovementRequest  true  "movimentação"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *LedgerHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	m, err := h.svc.RecordMovement(actorContext(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// EditMovement godoc
// @Summary      Editar movimentação
// @Description  Estorna o efeito antigo e aplica o novo. ID inexistente responde applied=false.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "ID da movimentação"
// @Param        body  body      dto.MovementRequest  true  "novo conteúdo"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *LedgerHandler) EditMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.svc.EditMovement(actorContext(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// DeleteMovement godoc
// @Summary      Excluir movimentação
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID da movimentação"
// @Success      200  {object}  dto.MutationResponse
// @Router       /api/movements/{id} [delete]
func (h *LedgerHandler) DeleteMovement(c *fiber.Ctx) error {
	res, err := h.svc.DeleteMovement(actorContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ListMovements godoc
// @Summary      Listar movimentações
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        resident_id  query     string  false  "residente"
// @Param        product_id   query     string  false  "produto"
// @Param        kind         query     string  false  "IN ou OUT"
// @Param        from         query     string  false  "data inicial AAAA-MM-DD"
// @Param        to           query     string  false  "data final AAAA-MM-DD"
// @Param        limit        query     int     false  "itens por página"
// @Param        offset       query     int     false  "deslocamento"
// @Success      200          {object}  dto.MovementListResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	var f dto.MovementFilter
	if err := c.QueryParser(&f); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, domain.ErrInvalidInput)
	}
	page.DefaultPage()

	list, err := h.svc.ListMovements(f)
	if err != nil {
		return writeError(c, err)
	}
	start, end := page.Bounds(len(list))
	return c.JSON(dto.MovementListResponse{
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(list)},
		Movements: list[start:end],
	})
}

// PersonalBalance godoc
// @Summary      Saldo pessoal do residente no produto
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Param        residentId  path      string  true  "residente"
// @Param        productId   path      string  true  "produto"
// @Success      200         {object}  dto.BalanceResponse
// @Router       /api/residents/{residentId}/products/{productId}/balance [get]
func (h *LedgerHandler) PersonalBalance(c *fiber.Ctx) error {
	res, err := h.svc.PersonalBalance(c.Params("residentId"), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ResidentBalances godoc
// @Summary      Saldos do residente em todos os produtos movimentados
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Param        residentId  path      string  true  "residente"
// @Success      200         {object}  dto.ResidentBalancesResponse
// @Router       /api/residents/{residentId}/balances [get]
func (h *LedgerHandler) ResidentBalances(c *fiber.Ctx) error {
	res, err := h.svc.ResidentBalances(c.Params("residentId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ConsumptionSeries godoc
// @Summary      Consumo diário do residente
// @Description  Uma entrada por dia, da mais antiga para hoje. days padrão 30.
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Param        residentId  path      string  true   "residente"
// @Param        days        query     int     false  "janela em dias"
// @Success      200         {object}  dto.ConsumptionSeriesResponse
// @Router       /api/residents/{residentId}/consumption [get]
func (h *LedgerHandler) ConsumptionSeries(c *fiber.Ctx) error {
	res, err := h.svc.ConsumptionSeries(c.Params("residentId"), c.QueryInt("days", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ProductStock godoc
// @Summary      Estoque geral do produto
// @Description  Contador incremental e o total refeito a partir do histórico.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "produto"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *LedgerHandler) ProductStock(c *fiber.Ctx) error {
	res, err := h.svc.ProductStock(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// VerifyLedger godoc
// @Summary      Verificar contadores contra o histórico
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/ledger/verify [get]
func (h *LedgerHandler) VerifyLedger(c *fiber.Ctx) error {
	drifts := h.svc.VerifyLedger()
	return c.JSON(fiber.Map{"consistent": len(drifts) == 0, "drifts": drifts})
}

// ReconcileLedger godoc
// @Summary      Corrigir contadores divergentes
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/ledger/reconcile [post]
func (h *LedgerHandler) ReconcileLedger(c *fiber.Ctx) error {
	fixed, err := h.svc.ReconcileLedger(actorContext(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"fixed": fixed})
}
