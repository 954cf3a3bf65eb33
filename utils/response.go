package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Error      string       `json:"error,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, &Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Paginated(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, &Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Error responses
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Success: false,
		Error:   message,
	})
}

// ValidationFailed returns the structured field-error list verbatim.
func ValidationFailed(c *gin.Context, errors []FieldError) {
	c.JSON(http.StatusBadRequest, &Response{
		Success: false,
		Error:   "validation failed",
		Errors:  errors,
	})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Success: false,
		Error:   message,
	})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, &Response{
		Success: false,
		Error:   message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Success: false,
		Error:   message,
	})
}

func Conflict(c *gin.Context, message string, data ...interface{}) {
	response := &Response{
		Success: false,
		Error:   message,
	}
	if len(data) > 0 {
		response.Data = data[0]
	}
	c.JSON(http.StatusConflict, response)
}

func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, &Response{
		Success: false,
		Error:   message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Success: false,
		Error:   message,
	})
}

func ServiceUnavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, &Response{
		Success: false,
		Error:   message,
	})
}
