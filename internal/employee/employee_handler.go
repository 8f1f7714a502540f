package employee

import (
	"employee-directory/internal/shared/apperror"
	"employee-directory/internal/shared/contextutil"
	"employee-directory/internal/shared/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultPageSize = 10

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) log(c *gin.Context) *zap.Logger {
	return contextutil.GetLogger(c.Request.Context(), h.logger)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.log(c).Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	h.log(c).Warn("employee request validation failed",
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, err.Error())
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll serves the sorted table: sort_by, sort_dir, q (name or email
// substring), page and page_size.
func (h *Handler) GetAll(c *gin.Context) {
	var query ListEmployeesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeBindError(c, err)
		return
	}

	key, err := ParseSortKey(query.SortBy)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	dir := ParseSortDir(query.SortDir)

	resp, err := h.service.GetAll(c.Request.Context(), key, dir)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if q := strings.ToLower(strings.TrimSpace(query.Q)); q != "" {
		filtered := make([]EmployeeResponse, 0, len(resp))
		for _, e := range resp {
			if strings.Contains(strings.ToLower(e.Name), q) || strings.Contains(strings.ToLower(e.Email), q) {
				filtered = append(filtered, e)
			}
		}
		resp = filtered
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	start, end := response.PageBounds(len(resp), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true, "id": id}, nil)
}
