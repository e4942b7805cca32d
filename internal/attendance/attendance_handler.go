package attendance

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	attendanceerrors "github.com/tzevk/accent-sub006/internal/attendance/errors"
	"github.com/tzevk/accent-sub006/internal/shared/apperror"
	"github.com/tzevk/accent-sub006/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) RecordDay(c *gin.Context) {
	var req RecordDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.RecordDay(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	employeeID := c.Query("employee_id")

	from, to, err := parseRangeQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByEmployeeAndRange(c.Request.Context(), employeeID, from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	employeeID := c.Query("employee_id")

	from, to, err := parseRangeQuery(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Summarize(c.Request.Context(), employeeID, from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// parseRangeQuery accepts either month=YYYY-MM or explicit from/to dates.
func parseRangeQuery(c *gin.Context) (time.Time, time.Time, error) {
	if month := c.Query("month"); month != "" {
		first, err := time.Parse("2006-01", month)
		if err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDateFormat
		}
		last := first.AddDate(0, 1, -1)
		return first, last, nil
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return from, to, nil
}
