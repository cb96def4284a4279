package repository

import (
	"math"

	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/storage"
)

type DashboardRepository interface {
	GetDashboardStats(date string) (*model.DashboardStats, error)
}

type dashboardRepository struct {
	db *storage.DB
}

func NewDashboardRepository(db *storage.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(date string) (*model.DashboardStats, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	// 1. Total employees (denominator of the rate)
	stats := &model.DashboardStats{
		TotalEmployees: int64(len(r.db.Employees)),
	}

	// 2. Daily counts; any other status string is ignored
	stats.TotalPresentToday = countByStatus(r.db, date, model.StatusPresent)
	stats.TotalAbsentToday = countByStatus(r.db, date, model.StatusAbsent)

	// 3. Rate
	stats.AttendanceRate = AttendanceRate(stats.TotalPresentToday, stats.TotalEmployees)

	return stats, nil
}

// AttendanceRate returns present/total as a percentage rounded to two
// decimals, or 0 when there are no employees.
func AttendanceRate(present, total int64) float64 {
	if total <= 0 {
		return 0.0
	}
	rate := float64(present) / float64(total) * 100
	return math.Round(rate*100) / 100
}
