package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/audit"
	"github.com/linskybing/scrumish/internal/repository"
	"github.com/linskybing/scrumish/pkg/response"
	"github.com/linskybing/scrumish/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query audit logs
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param user_id query uint false "Actor"
// @Param resource_type query string false "Resource type"
// @Param action query string false "Action"
// @Param start_time query string false "RFC 3339 lower bound"
// @Param end_time query string false "RFC 3339 upper bound"
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} audit.AuditLog
// @Failure 400 {object} response.ErrorResponse "Bad query"
// @Router /admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := repository.AuditQueryParams{Limit: 100}

	uid, err := utils.ParseOptionalQueryUint(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
		return
	}
	params.UserID = uid
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	for name, dst := range map[string]**time.Time{"start_time": &params.StartTime, "end_time": &params.EndTime} {
		v := c.Query(name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name})
			return
		}
		*dst = &t
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 1000 {
		params.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		params.Offset = v
	}

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		respondError(c, err)
		return
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	c.JSON(http.StatusOK, logs)
}
