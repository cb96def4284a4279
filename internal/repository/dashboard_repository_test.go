package repository

import (
	"testing"

	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRate(t *testing.T) {
	assert.Equal(t, 0.0, AttendanceRate(0, 0))
	assert.Equal(t, 0.0, AttendanceRate(5, 0))
	assert.Equal(t, 100.0, AttendanceRate(1, 1))
	assert.Equal(t, 33.33, AttendanceRate(1, 3))
	assert.Equal(t, 66.67, AttendanceRate(2, 3))
	assert.Equal(t, 50.0, AttendanceRate(1, 2))
}

func TestDashboardStatsEmpty(t *testing.T) {
	repo := NewDashboardRepository(storage.OpenDB())

	stats, err := repo.GetDashboardStats("2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, model.DashboardStats{}, *stats)
}

func TestDashboardStatsCountsOnlyTheGivenDate(t *testing.T) {
	db := storage.OpenDB()
	employees := NewEmployeeRepository(db)
	attendance := NewAttendanceRepository(db)
	dashboard := NewDashboardRepository(db)

	require.NoError(t, employees.Create(newEmployee("E1", "a@x.com")))
	require.NoError(t, employees.Create(newEmployee("E2", "b@x.com")))
	require.NoError(t, employees.Create(newEmployee("E3", "c@x.com")))

	_, _ = attendance.Mark(1, "2026-10-14", model.StatusPresent)
	_, _ = attendance.Mark(2, "2026-10-14", model.StatusAbsent)
	_, _ = attendance.Mark(3, "2026-10-14", "On Leave")
	_, _ = attendance.Mark(2, "2026-10-13", model.StatusPresent)

	stats, err := dashboard.GetDashboardStats("2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.TotalPresentToday)
	assert.Equal(t, int64(1), stats.TotalAbsentToday)
	assert.Equal(t, 33.33, stats.AttendanceRate)
}

func TestDashboardRateZeroWithoutEmployees(t *testing.T) {
	db := storage.OpenDB()
	employees := NewEmployeeRepository(db)
	attendance := NewAttendanceRepository(db)
	dashboard := NewDashboardRepository(db)

	require.NoError(t, employees.Create(newEmployee("E1", "a@x.com")))
	_, err := attendance.Mark(1, "2026-10-14", model.StatusPresent)
	require.NoError(t, err)
	require.NoError(t, employees.Delete(1))

	stats, err := dashboard.GetDashboardStats("2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.TotalPresentToday)
	assert.Equal(t, 0.0, stats.AttendanceRate)
}
