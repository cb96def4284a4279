package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/repository"
	"hrms-lite-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardUsesCurrentDate(t *testing.T) {
	db := storage.OpenDB()
	employees := repository.NewEmployeeRepository(db)
	attendance := repository.NewAttendanceRepository(db)
	require.NoError(t, employees.Create(&model.Employee{EmployeeID: "E1", Email: "a@x.com"}))
	require.NoError(t, employees.Create(&model.Employee{EmployeeID: "E2", Email: "b@x.com"}))
	_, err := attendance.Mark(1, "2026-10-14", model.StatusPresent)
	require.NoError(t, err)
	_, err = attendance.Mark(2, "2026-10-13", model.StatusPresent)
	require.NoError(t, err)

	hdl := NewDashboardHandler(repository.NewDashboardRepository(db))
	hdl.now = func() time.Time { return time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local) }

	app := fiber.New()
	app.Get("/stats", hdl.GetStats)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stats", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"total_employees":2,"total_present_today":1,"total_absent_today":0,"attendance_rate":50}`, string(raw))
}

type failingDashboardRepo struct{}

func (failingDashboardRepo) GetDashboardStats(string) (*model.DashboardStats, error) {
	return nil, errors.New("boom")
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/stats", NewDashboardHandler(failingDashboardRepo{}).GetStats)
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stats", nil), -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, string(raw))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	raw, _ = io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"short and stout"}`, string(raw))
}
