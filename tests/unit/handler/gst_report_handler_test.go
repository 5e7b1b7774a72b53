package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"medstore/internal/handler"
	"medstore/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGSTReportHandler_Export_Success(t *testing.T) {
	mockSvc := new(mocks.MockGSTReportService)
	h := handler.NewGSTReportHandler(mockSvc)

	mockSvc.On("ExportXLSX", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			w := args.Get(2).(io.Writer)
			_, _ = w.Write([]byte("PK\x03\x04workbook"))
		}).
		Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/gstr1/export", nil)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	mockSvc.AssertExpectations(t)
}

func TestGSTReportHandler_Export_FailureYieldsCleanJSONError(t *testing.T) {
	mockSvc := new(mocks.MockGSTReportService)
	h := handler.NewGSTReportHandler(mockSvc)

	mockSvc.On("ExportXLSX", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("listing invoices: connection reset"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/gstr1/export", nil)

	h.Export(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.NotContains(t, w.Body.String(), "PK")

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestGSTReportHandler_Export_BadDateFilter(t *testing.T) {
	mockSvc := new(mocks.MockGSTReportService)
	h := handler.NewGSTReportHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/gstr1/export?from=yesterday", nil)

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ExportXLSX", mock.Anything, mock.Anything, mock.Anything)
}
