package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tzevk/accent-sub006/internal/attendance"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

type fakeAttendanceService struct {
	recordDayFn             func(ctx context.Context, req attendance.RecordDayRequest) (attendance.AttendanceResponse, error)
	getByEmployeeAndRangeFn func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceResponse, error)
	summarizeFn             func(ctx context.Context, employeeID string, from, to time.Time) (attendance.Summary, error)
}

func (f *fakeAttendanceService) RecordDay(ctx context.Context, req attendance.RecordDayRequest) (attendance.AttendanceResponse, error) {
	return f.recordDayFn(ctx, req)
}

func (f *fakeAttendanceService) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceResponse, error) {
	return f.getByEmployeeAndRangeFn(ctx, employeeID, from, to)
}

func (f *fakeAttendanceService) Summarize(ctx context.Context, employeeID string, from, to time.Time) (attendance.Summary, error) {
	return f.summarizeFn(ctx, employeeID, from, to)
}

func TestAttendanceHandler_RecordDay(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakeAttendanceService{
		recordDayFn: func(ctx context.Context, req attendance.RecordDayRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, attendance.StatusHalfDay, req.Status)
			return attendance.AttendanceResponse{
				ID:             uuid.New().String(),
				EmployeeID:     req.EmployeeID,
				AttendanceDate: req.AttendanceDate,
				Status:         req.Status,
			}, nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","attendance_date":"2026-03-02","status":"HALF_DAY"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.RecordDay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
}

func TestAttendanceHandler_RecordDay_RejectsUnknownStatus(t *testing.T) {
	h := attendance.NewHandler(&fakeAttendanceService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","attendance_date":"2026-03-02","status":"VACATION"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.RecordDay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandler_GetSummary_MonthQuery(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakeAttendanceService{
		summarizeFn: func(ctx context.Context, id string, from, to time.Time) (attendance.Summary, error) {
			assert.Equal(t, employeeID, id)
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), to)
			return attendance.Summary{EmployeeID: id, From: from, To: to, PayableDays: 26, PayRatio: 1}, nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance/summary?employee_id="+employeeID+"&month=2026-03", nil)

	h.GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAttendanceHandler_GetSummary_BadRange(t *testing.T) {
	h := attendance.NewHandler(&fakeAttendanceService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance/summary?employee_id=x&month=March", nil)

	h.GetSummary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
