package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// RulesHandler serves the per-state program requirements. The registry is
// built once at startup and injected here; nothing mutates it afterwards.
type RulesHandler struct {
	registry *domain.RuleRegistry
}

func NewRulesHandler(registry *domain.RuleRegistry) *RulesHandler {
	return &RulesHandler{registry: registry}
}

// List returns the registered state codes.
//
// @Summary      List registered states
// @Tags         rules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /api/rules [get]
func (h *RulesHandler) List(c echo.Context) error {
	states := h.registry.States()
	sort.Strings(states)
	return c.JSON(http.StatusOK, states)
}

// Get returns one state's program requirements.
//
// @Summary      Get state rules
// @Tags         rules
// @Produce      json
// @Security     BearerAuth
// @Param        state  path  string  true  "Two-letter state code"
// @Success      200  {object}  domain.StateRules
// @Failure      404  {object}  map[string]string
// @Router       /api/rules/{state} [get]
func (h *RulesHandler) Get(c echo.Context) error {
	rules, err := h.registry.Get(c.Param("state"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rules)
}
