package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

// StudentHandler exposes the student record endpoints, open to admins and
// instructors alike.
type StudentHandler struct {
	studentService ports.StudentService
}

func NewStudentHandler(studentService ports.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

type createStudentRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=120"`
	Status        string  `json:"status" validate:"omitempty,oneof=enrolled active completed"`
	ProgressHours float64 `json:"progress_hours" validate:"gte=0"`
	Notes         string  `json:"notes"`
}

type updateStudentRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Status        *string  `json:"status" validate:"omitempty,oneof=enrolled active completed"`
	ProgressHours *float64 `json:"progress_hours" validate:"omitempty,gte=0"`
	Notes         *string  `json:"notes"`
}

// List returns a page of students, newest first.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Max rows (default 200)"
// @Param        offset  query  int  false  "Rows to skip"
// @Success      200  {array}  domain.Student
// @Router       /api/students [get]
func (h *StudentHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	students, err := h.studentService.List(c.Request().Context(), ports.ListStudentsFilter{Limit: limit, Offset: offset})
	if err != nil {
		return err
	}
	if students == nil {
		students = []*domain.Student{}
	}
	return c.JSON(http.StatusOK, students)
}

// Get returns a single student.
//
// @Summary      Get student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Student id"
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.studentService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Create enrolls a new student.
//
// @Summary      Create student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStudentRequest  true  "Student details"
// @Success      201   {object}  domain.Student
// @Failure      400   {object}  map[string]string
// @Router       /api/students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	student, err := h.studentService.Create(c.Request().Context(), ports.CreateStudentInput{
		Name:          req.Name,
		Status:        domain.StudentStatus(req.Status),
		ProgressHours: req.ProgressHours,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, student)
}

// Update applies a partial update to a student record.
//
// @Summary      Update student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Student id"
// @Param        body  body      updateStudentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Student
// @Failure      404   {object}  map[string]string
// @Router       /api/students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	input := ports.UpdateStudentInput{
		Name:          req.Name,
		ProgressHours: req.ProgressHours,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		status := domain.StudentStatus(*req.Status)
		input.Status = &status
	}

	student, err := h.studentService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Delete removes a student record.
//
// @Summary      Delete student
// @Tags         students
// @Security     BearerAuth
// @Param        id  path  string  true  "Student id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.studentService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
