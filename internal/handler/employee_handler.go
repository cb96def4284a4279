package handler

import (
	"errors"
	"fmt"

	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// Pointers distinguish a missing field from an empty one.
type CreateEmployeeRequest struct {
	EmployeeID *string `json:"employee_id" validate:"required,min=1"`
	FullName   *string `json:"full_name" validate:"required,min=1,max=100"`
	Email      *string `json:"email" validate:"required,email"`
	Department *string `json:"department" validate:"required"`
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	employee := model.Employee{
		EmployeeID: *req.EmployeeID,
		FullName:   *req.FullName,
		Email:      *req.Email,
		Department: *req.Department,
	}

	if err := h.repo.Create(&employee); err != nil {
		var dup *repository.DuplicateError
		if errors.As(err, &dup) {
			return errorResponse(c, fiber.StatusBadRequest, duplicateMessage(dup))
		}
		return err
	}

	log.Infof("employee created id=%d employee_id=%s", employee.ID, employee.EmployeeID)
	return c.Status(fiber.StatusCreated).JSON(employee)
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.repo.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "id must be an integer")
	}

	employee, err := h.repo.FindByID(toID(id))
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return errorResponse(c, fiber.StatusNotFound, "Employee not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(employee)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorResponse(c, fiber.StatusUnprocessableEntity, "id must be an integer")
	}

	err = h.repo.Delete(toID(id))
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return errorResponse(c, fiber.StatusNotFound, "Employee not found")
	}
	if err != nil {
		return err
	}

	log.Infof("employee deleted id=%d", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func duplicateMessage(dup *repository.DuplicateError) string {
	if dup.Field == "email" {
		return fmt.Sprintf("Email '%s' already exists", dup.Value)
	}
	return fmt.Sprintf("Employee ID '%s' already exists", dup.Value)
}

// toID maps non-positive path values to 0, which no employee ever has.
func toID(id int) uint {
	if id < 1 {
		return 0
	}
	return uint(id)
}
