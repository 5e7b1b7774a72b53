package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"medstore/internal/domain"
	"medstore/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "DUPLICATE_USERNAME", "username already exists"
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden, "INSUFFICIENT_ROLE", "insufficient role for this action"
	case errors.Is(err, domain.ErrMissingCustomer):
		return http.StatusBadRequest, "MISSING_CUSTOMER", "invoice requires a customer"
	case errors.Is(err, domain.ErrMissingSupplier):
		return http.StatusBadRequest, "MISSING_SUPPLIER", "purchase requires a supplier"
	case errors.Is(err, domain.ErrNoLineItems):
		return http.StatusBadRequest, "NO_LINE_ITEMS", "document requires at least one line item"
	case errors.Is(err, domain.ErrInvalidCustomerType):
		return http.StatusBadRequest, "INVALID_CUSTOMER_TYPE", "customer type must be B2B, B2C or B2CL"
	case errors.Is(err, domain.ErrGSTINRequired):
		return http.StatusBadRequest, "GSTIN_REQUIRED", "B2B customers must carry a GSTIN"
	case errors.Is(err, domain.ErrInvalidStateCode):
		return http.StatusBadRequest, "INVALID_STATE_CODE", "state code must be a 2-digit GST state code"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "INVALID_QUANTITY", "line item quantity must be positive"
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, "INSUFFICIENT_STOCK", "not enough stock to complete this sale"
	case errors.Is(err, domain.ErrDuplicateDocumentNumber):
		return http.StatusConflict, "DUPLICATE_DOCUMENT_NUMBER", "document number already exists"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("internal error rid=%s: %v", c.GetString(middleware.ContextKeyRequestID), err)
	}
	RespondError(c, status, code, msg)
}

// parsePagination reads offset/limit query params with sane bounds.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// parseDateFilters reads optional from/to query params (RFC 3339 or
// YYYY-MM-DD). A bare "to" date is pushed to the end of that day so the
// range is inclusive.
func parseDateFilters(c *gin.Context) (*domain.ReportFilters, error) {
	filters := &domain.ReportFilters{}
	if raw := c.Query("from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filters.To = &t
	}
	return filters, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

