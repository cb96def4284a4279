package storage

import (
	"sync"

	"hrms-lite-backend/internal/model"
)

// DB holds all application state in process memory. Repositories share one
// DB and must hold the embedded lock while touching any field.
type DB struct {
	sync.RWMutex

	Employees        []model.Employee
	Attendance       []model.Attendance
	NextEmployeeID   uint
	NextAttendanceID uint
}

func OpenDB() *DB {
	return &DB{
		Employees:        make([]model.Employee, 0),
		Attendance:       make([]model.Attendance, 0),
		NextEmployeeID:   1,
		NextAttendanceID: 1,
	}
}
