package model

type DashboardStats struct {
	TotalEmployees    int64   `json:"total_employees"`
	TotalPresentToday int64   `json:"total_present_today"`
	TotalAbsentToday  int64   `json:"total_absent_today"`
	AttendanceRate    float64 `json:"attendance_rate"`
}
