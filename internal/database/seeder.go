package database

import (
	"errors"
	"time"

	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/repository"
	"hrms-lite-backend/internal/storage"

	"github.com/gofiber/fiber/v2/log"
)

// SeedAll loads demo employees and today's attendance for two of them.
// Employees that already exist are skipped, so it is safe to call twice.
func SeedAll(db *storage.DB) error {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// 1. Seed Employees
	employees := []model.Employee{
		{EmployeeID: "EMP001", FullName: "Ann Lee", Email: "ann.lee@example.com", Department: "Engineering"},
		{EmployeeID: "EMP002", FullName: "Budi Santoso", Email: "budi.santoso@example.com", Department: "Finance"},
		{EmployeeID: "EMP003", FullName: "Chen Wei", Email: "chen.wei@example.com", Department: "Human Resources"},
	}
	created := make([]model.Employee, 0, len(employees))
	for i := range employees {
		e := employees[i]
		err := employeeRepo.Create(&e)
		var dup *repository.DuplicateError
		if errors.As(err, &dup) {
			log.Infof("seed: skipping %s, %s already taken", e.EmployeeID, dup.Field)
			continue
		}
		if err != nil {
			return err
		}
		created = append(created, e)
	}

	// 2. Seed today's attendance for the first two new employees
	today := time.Now().Format(model.DateLayout)
	statuses := []string{model.StatusPresent, model.StatusAbsent}
	for i, e := range created {
		if i >= len(statuses) {
			break
		}
		if _, err := attendanceRepo.Mark(e.ID, today, statuses[i]); err != nil {
			return err
		}
	}

	log.Infof("seed: %d employees created", len(created))
	return nil
}
