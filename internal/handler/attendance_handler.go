package handler

import (
	"errors"
	"strconv"
	"time"

	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

type MarkAttendanceRequest struct {
	Date   *string `json:"date" validate:"required,datetime=2006-01-02"`
	Status *string `json:"status" validate:"required"`
}

// Mark creates or updates the attendance of ?employee_id= for one date.
// date and status are read from the JSON body, or from the query string when
// the body leaves them out.
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	// 1. Employee from the query string
	rawID := c.Query("employee_id")
	if rawID == "" {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "employee_id is required")
	}
	employeeID, err := strconv.Atoi(rawID)
	if err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "employee_id must be an integer")
	}

	// 2. Payload
	var req MarkAttendanceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return errorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request body")
		}
	}
	args := c.Context().QueryArgs()
	if req.Date == nil && args.Has("date") {
		date := c.Query("date")
		req.Date = &date
	}
	if req.Status == nil && args.Has("status") {
		status := c.Query("status")
		req.Status = &status
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	// 3. Upsert
	att, err := h.repo.Mark(toID(employeeID), *req.Date, *req.Status)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return errorResponse(c, fiber.StatusNotFound, "Employee not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(att)
}

// GetAll lists every record, optionally restricted to ?date=YYYY-MM-DD.
func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		list, err := h.repo.GetAll()
		if err != nil {
			return err
		}
		return c.JSON(list)
	}

	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "date must be a date in YYYY-MM-DD format")
	}
	list, err := h.repo.GetByDate(date)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("employee_id")
	if err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "employee_id must be an integer")
	}

	history, err := h.repo.GetHistory(toID(employeeID))
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return errorResponse(c, fiber.StatusNotFound, "Employee not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(history)
}
