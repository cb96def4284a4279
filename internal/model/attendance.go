package model

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DateLayout is the calendar date format used for attendance records.
const DateLayout = "2006-01-02"

type Attendance struct {
	ID         uint   `json:"id"`
	EmployeeID uint   `json:"employee_id"` // surrogate Employee.ID, not the business code
	Date       string `json:"date"`        // Format YYYY-MM-DD
	Status     string `json:"status"`      // Present/Absent, not enforced
}
