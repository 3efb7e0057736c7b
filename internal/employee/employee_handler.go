package employee

import (
	"net/http"
	"strconv"

	"employee-api/internal/shared/apperror"
	"employee-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) CreateBulk(c *gin.Context) {
	var reqs []CreateEmployeeRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.logger.Warn("http bulk create validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}
	if len(reqs) == 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Request body must contain at least one employee", nil)
		return
	}

	resp, err := h.service.CreateBulk(c.Request.Context(), reqs)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Patch(c *gin.Context) {
	id := c.Param("id")

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.logger.Warn("http patch employee validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	resp, err := h.service.Patch(c.Request.Context(), id, fields)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}

func (h *Handler) SearchByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "email query parameter is required", nil)
		return
	}

	resp, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) SearchBySalaryRange(c *gin.Context) {
	minSalary, ok := h.floatQuery(c, "min")
	if !ok {
		return
	}
	maxSalary, ok := h.floatQuery(c, "max")
	if !ok {
		return
	}

	resp, err := h.service.GetBySalaryBetween(c.Request.Context(), minSalary, maxSalary)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) FilterByDeptAndGender(c *gin.Context) {
	dept, gender, ok := h.deptGenderQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByDeptAndGender(c.Request.Context(), dept, gender)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) FilterByDeptOrGender(c *gin.Context) {
	dept, gender, ok := h.deptGenderQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByDeptOrGender(c.Request.Context(), dept, gender)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) FilterByGender(c *gin.Context) {
	gender := c.Query("gender")
	if gender == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "gender query parameter is required", nil)
		return
	}

	resp, err := h.service.GetByGender(c.Request.Context(), gender)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) FilterBySalaryAbove(c *gin.Context) {
	salary, ok := h.floatQuery(c, "salary")
	if !ok {
		return
	}

	resp, err := h.service.GetBySalaryGreaterThan(c.Request.Context(), salary)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) FilterBySalaryBelow(c *gin.Context) {
	salary, ok := h.floatQuery(c, "salary")
	if !ok {
		return
	}

	resp, err := h.service.GetBySalaryLessThan(c.Request.Context(), salary)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) NameSalary(c *gin.Context) {
	resp, err := h.service.GetNameSalary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) NameSalaryByDept(c *gin.Context) {
	dept := c.Query("dept")
	if dept == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "dept query parameter is required", nil)
		return
	}

	resp, err := h.service.GetNameSalaryByDept(c.Request.Context(), dept)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Rename(c *gin.Context) {
	id := c.Param("id")
	oldName := c.Query("oldName")
	newName := c.Query("newName")
	if oldName == "" || newName == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "oldName and newName query parameters are required", nil)
		return
	}

	resp, err := h.service.RenameWithOldName(c.Request.Context(), id, oldName, newName)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// DeleteByDeptAndGender matches dept and gender exactly as given; callers
// must pass canonical values or nothing matches.
func (h *Handler) DeleteByDeptAndGender(c *gin.Context) {
	dept, gender, ok := h.deptGenderQuery(c)
	if !ok {
		return
	}

	affected, err := h.service.DeleteByDeptAndGender(c.Request.Context(), dept, gender)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if affected == 0 {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "No employees found to delete", nil)
		return
	}

	response.Success(c, http.StatusOK, AffectedResponse{Affected: affected})
}

func (h *Handler) IncreaseSalary(c *gin.Context) {
	dept := c.Query("dept")
	if dept == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "dept query parameter is required", nil)
		return
	}
	percent, ok := h.floatQuery(c, "percent")
	if !ok {
		return
	}

	affected, err := h.service.IncreaseSalaryByDept(c.Request.Context(), dept, percent)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, AffectedResponse{Affected: affected})
}

func (h *Handler) floatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, name+" query parameter is required", nil)
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, name+" must be a number", nil)
		return 0, false
	}
	return v, true
}

func (h *Handler) deptGenderQuery(c *gin.Context) (string, string, bool) {
	dept := c.Query("dept")
	gender := c.Query("gender")
	if dept == "" || gender == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "dept and gender query parameters are required", nil)
		return "", "", false
	}
	return dept, gender, true
}
