package repository

import (
	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/storage"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindByID(id uint) (*model.Employee, error)
	GetAll() ([]model.Employee, error)
	Delete(id uint) error
	Count() (int64, error)
}

type employeeRepository struct {
	db *storage.DB
}

func NewEmployeeRepository(db *storage.DB) EmployeeRepository {
	return &employeeRepository{db}
}

// Create assigns the next surrogate ID and stores the employee. The business
// code is compared before the email for every existing record, so a request
// colliding on both reports the code.
func (r *employeeRepository) Create(employee *model.Employee) error {
	r.db.Lock()
	defer r.db.Unlock()

	for _, e := range r.db.Employees {
		if e.EmployeeID == employee.EmployeeID {
			return &DuplicateError{Field: "employee_id", Value: employee.EmployeeID}
		}
		if e.Email == employee.Email {
			return &DuplicateError{Field: "email", Value: employee.Email}
		}
	}

	employee.ID = r.db.NextEmployeeID
	r.db.Employees = append(r.db.Employees, *employee)
	r.db.NextEmployeeID++
	return nil
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	i := indexOfEmployee(r.db, id)
	if i < 0 {
		return nil, ErrEmployeeNotFound
	}
	employee := r.db.Employees[i]
	return &employee, nil
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	employees := make([]model.Employee, len(r.db.Employees))
	copy(employees, r.db.Employees)
	return employees, nil
}

// Delete removes the employee only; attendance rows referencing it are kept.
func (r *employeeRepository) Delete(id uint) error {
	r.db.Lock()
	defer r.db.Unlock()

	i := indexOfEmployee(r.db, id)
	if i < 0 {
		return ErrEmployeeNotFound
	}
	r.db.Employees = append(r.db.Employees[:i], r.db.Employees[i+1:]...)
	return nil
}

func (r *employeeRepository) Count() (int64, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return int64(len(r.db.Employees)), nil
}

// indexOfEmployee expects the caller to hold db's lock.
func indexOfEmployee(db *storage.DB, id uint) int {
	for i := range db.Employees {
		if db.Employees[i].ID == id {
			return i
		}
	}
	return -1
}
