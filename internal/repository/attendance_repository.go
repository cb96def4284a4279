package repository

import (
	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/storage"
)

type AttendanceRepository interface {
	Mark(employeeID uint, date string, status string) (*model.Attendance, error)
	GetAll() ([]model.Attendance, error)
	GetByDate(date string) ([]model.Attendance, error)
	GetHistory(employeeID uint) ([]model.Attendance, error)
	CountByStatus(date string, status string) (int64, error)
}

type attendanceRepository struct {
	db *storage.DB
}

func NewAttendanceRepository(db *storage.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// Mark creates the (employee, date) record or overwrites the status of the
// one already stored. The employee must exist at the time of the call.
func (r *attendanceRepository) Mark(employeeID uint, date string, status string) (*model.Attendance, error) {
	r.db.Lock()
	defer r.db.Unlock()

	if indexOfEmployee(r.db, employeeID) < 0 {
		return nil, ErrEmployeeNotFound
	}

	for i := range r.db.Attendance {
		att := &r.db.Attendance[i]
		if att.EmployeeID == employeeID && att.Date == date {
			att.Status = status
			updated := *att
			return &updated, nil
		}
	}

	att := model.Attendance{
		ID:         r.db.NextAttendanceID,
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
	r.db.Attendance = append(r.db.Attendance, att)
	r.db.NextAttendanceID++
	return &att, nil
}

func (r *attendanceRepository) GetAll() ([]model.Attendance, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	list := make([]model.Attendance, len(r.db.Attendance))
	copy(list, r.db.Attendance)
	return list, nil
}

func (r *attendanceRepository) GetByDate(date string) ([]model.Attendance, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return filterAttendance(r.db, func(att model.Attendance) bool { return att.Date == date }), nil
}

// GetHistory fails with ErrEmployeeNotFound when the employee is unknown,
// even though orphaned rows for a deleted employee may still exist.
func (r *attendanceRepository) GetHistory(employeeID uint) ([]model.Attendance, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	if indexOfEmployee(r.db, employeeID) < 0 {
		return nil, ErrEmployeeNotFound
	}
	return filterAttendance(r.db, func(att model.Attendance) bool { return att.EmployeeID == employeeID }), nil
}

func (r *attendanceRepository) CountByStatus(date string, status string) (int64, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return countByStatus(r.db, date, status), nil
}

// filterAttendance expects the caller to hold db's lock.
func filterAttendance(db *storage.DB, keep func(model.Attendance) bool) []model.Attendance {
	list := make([]model.Attendance, 0)
	for _, att := range db.Attendance {
		if keep(att) {
			list = append(list, att)
		}
	}
	return list
}

// countByStatus expects the caller to hold db's lock.
func countByStatus(db *storage.DB, date string, status string) int64 {
	var count int64
	for _, att := range db.Attendance {
		if att.Date == date && att.Status == status {
			count++
		}
	}
	return count
}
