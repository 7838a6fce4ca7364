package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

type DashboardHandler struct {
	studentService ports.StudentService
}

func NewDashboardHandler(studentService ports.StudentService) *DashboardHandler {
	return &DashboardHandler{studentService: studentService}
}

// Stats returns the student counts shown on the dashboard.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /api/dashboard-stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.studentService.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
