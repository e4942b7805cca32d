package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tzevk/accent-sub006/internal/payroll"
	payrollerrors "github.com/tzevk/accent-sub006/internal/payroll/errors"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	previewFn         func(ctx context.Context, employeeID, month string) (payroll.PreviewResponse, error)
	generateFn        func(ctx context.Context, actorID string, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error)
	generateAllFn     func(ctx context.Context, actorID, month string) (payroll.BatchGenerateResponse, error)
	getAllFn          func(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayslipResponse, error)
	getByIDFn         func(ctx context.Context, id string) (payroll.PayslipResponse, error)
	updateLifecycleFn func(ctx context.Context, actorID, id string, req payroll.UpdateLifecycleRequest) (payroll.PayslipResponse, error)
	generateDocFn     func(ctx context.Context, slipID string) (payroll.PayslipResponse, error)
}

func (f *fakePayrollService) Preview(ctx context.Context, employeeID, month string) (payroll.PreviewResponse, error) {
	return f.previewFn(ctx, employeeID, month)
}

func (f *fakePayrollService) Generate(ctx context.Context, actorID string, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	return f.generateFn(ctx, actorID, req)
}

func (f *fakePayrollService) GenerateAll(ctx context.Context, actorID, month string) (payroll.BatchGenerateResponse, error) {
	return f.generateAllFn(ctx, actorID, month)
}

func (f *fakePayrollService) GetAll(ctx context.Context, filter payroll.ListFilter) ([]payroll.PayslipResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePayrollService) UpdateLifecycle(ctx context.Context, actorID, id string, req payroll.UpdateLifecycleRequest) (payroll.PayslipResponse, error) {
	return f.updateLifecycleFn(ctx, actorID, id, req)
}

func (f *fakePayrollService) GeneratePayslipDocument(ctx context.Context, slipID string) (payroll.PayslipResponse, error) {
	return f.generateDocFn(ctx, slipID)
}

func TestPayrollHandler_Generate_Single(t *testing.T) {
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, aid string, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, "2026-03", req.Month)
			return payroll.PayslipResponse{
				ID:            uuid.New().String(),
				SlipNumber:    "PS-202603-00001",
				EmployeeID:    req.EmployeeID,
				Month:         req.Month,
				PaymentStatus: payroll.StatusPending,
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","month":"2026-03"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("employee_id", actorID)

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Generate_Preview(t *testing.T) {
	employeeID := uuid.New().String()

	previewCalled := false
	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, eid, month string) (payroll.PreviewResponse, error) {
			previewCalled = true
			return payroll.PreviewResponse{EmployeeID: eid, Month: month}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","month":"2026-03","preview":true}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, previewCalled)
}

func TestPayrollHandler_Generate_Conflict(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, actorID string, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
			return payroll.PayslipResponse{}, payrollerrors.ErrSlipAlreadyExists
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + uuid.New().String() + `","month":"2026-03"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPayrollHandler_Generate_MissingEmployee(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"month":"2026-03"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payslips/generate", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_UpdateLifecycle(t *testing.T) {
	slipID := uuid.New().String()

	svc := &fakePayrollService{
		updateLifecycleFn: func(ctx context.Context, actorID, id string, req payroll.UpdateLifecycleRequest) (payroll.PayslipResponse, error) {
			assert.Equal(t, slipID, id)
			assert.Equal(t, payroll.StatusProcessed, req.Status)
			return payroll.PayslipResponse{ID: id, PaymentStatus: req.Status}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"status":"PROCESSED"}`
	c.Request = httptest.NewRequest(http.MethodPatch, "/payslips/"+slipID+"/lifecycle", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: slipID}}

	h.UpdateLifecycle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_UpdateLifecycle_RejectsUnknownStatus(t *testing.T) {
	h := payroll.NewHandler(&fakePayrollService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"status":"CANCELLED"}`
	c.Request = httptest.NewRequest(http.MethodPatch, "/payslips/123/lifecycle", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}

	h.UpdateLifecycle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	slipID := uuid.New().String()

	t.Run("redirects when generated", func(t *testing.T) {
		url := "payslips/PS-202603-00001.pdf"
		svc := &fakePayrollService{
			getByIDFn: func(ctx context.Context, id string) (payroll.PayslipResponse, error) {
				return payroll.PayslipResponse{ID: id, PayslipURL: &url}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payslips/"+slipID+"/download", nil)
		c.Params = []gin.Param{{Key: "id", Value: slipID}}

		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	})

	t.Run("conflict when not generated", func(t *testing.T) {
		svc := &fakePayrollService{
			getByIDFn: func(ctx context.Context, id string) (payroll.PayslipResponse, error) {
				return payroll.PayslipResponse{ID: id}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/payslips/"+slipID+"/download", nil)
		c.Params = []gin.Param{{Key: "id", Value: slipID}}

		h.DownloadPayslip(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
