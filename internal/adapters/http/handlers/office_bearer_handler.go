package handlers

import (
	"samajam-backend/internal/adapters/persistence/repositories"
	"samajam-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Current committee term
const (
	currentTermStart = "2025"
	currentTermEnd   = "2028"
)

// OfficeBearerHandler serves office bearer reference data. The table
// is externally managed, so the handler reads the repository directly.
// Responses are bare JSON arrays like the gallery routes.
type OfficeBearerHandler struct {
	bearerRepo repositories.OfficeBearerRepository
}

// NewOfficeBearerHandler creates a new office bearer handler
func NewOfficeBearerHandler(bearerRepo repositories.OfficeBearerRepository) *OfficeBearerHandler {
	return &OfficeBearerHandler{bearerRepo: bearerRepo}
}

// GetCurrent returns the office bearers of the current term
// @Summary Current office bearers
// @Tags OfficeBearers
// @Produce json
// @Success 200 {array} models.OfficeBearer
// @Router /api/office-bearers/current [get]
func (h *OfficeBearerHandler) GetCurrent(c *fiber.Ctx) error {
	bearers, err := h.bearerRepo.GetByTerm(c.Context(), currentTermStart, currentTermEnd)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch office bearers")
	}
	return c.JSON(bearers)
}

// GetByTerm returns the office bearers of one term
// @Summary Office bearers by term
// @Tags OfficeBearers
// @Produce json
// @Param termStart path string true "Term start year"
// @Param termEnd path string true "Term end year"
// @Success 200 {array} models.OfficeBearer
// @Router /api/office-bearers/term/{termStart}/{termEnd} [get]
func (h *OfficeBearerHandler) GetByTerm(c *fiber.Ctx) error {
	termStart := c.Params("termStart")
	termEnd := c.Params("termEnd")

	bearers, err := h.bearerRepo.GetByTerm(c.Context(), termStart, termEnd)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch office bearers")
	}
	return c.JSON(bearers)
}

// GetAll returns every office bearer, latest term first
// @Summary All office bearers
// @Tags OfficeBearers
// @Produce json
// @Success 200 {array} models.OfficeBearer
// @Router /api/office-bearers/all [get]
func (h *OfficeBearerHandler) GetAll(c *fiber.Ctx) error {
	bearers, err := h.bearerRepo.GetAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch office bearers")
	}
	return c.JSON(bearers)
}
