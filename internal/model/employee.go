package model

type Employee struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"` // business code, unique
	FullName   string `json:"full_name"`
	Email      string `json:"email"` // unique
	Department string `json:"department"`
}
