package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/scrumish/internal/api/middleware"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/project"
	"github.com/linskybing/scrumish/internal/domain/shared"
	"github.com/linskybing/scrumish/pkg/response"
	"github.com/linskybing/scrumish/pkg/utils"
	log "github.com/sirupsen/logrus"
)

var statusBySentinel = []struct {
	err    error
	status int
}{
	{application.ErrUnauthenticated, http.StatusUnauthorized},
	{application.ErrInvalidCredentials, http.StatusUnauthorized},
	{application.ErrForbidden, http.StatusForbidden},

	{application.ErrUserNotFound, http.StatusNotFound},
	{application.ErrProjectNotFound, http.StatusNotFound},
	{application.ErrMemberNotFound, http.StatusNotFound},
	{application.ErrIssueNotFound, http.StatusNotFound},
	{application.ErrAttachmentNotFound, http.StatusNotFound},
	{application.ErrSprintNotFound, http.StatusNotFound},
	{application.ErrEpicNotFound, http.StatusNotFound},
	{application.ErrStoryNotFound, http.StatusNotFound},
	{application.ErrCriteriaNotFound, http.StatusNotFound},
	{application.ErrTestCaseNotFound, http.StatusNotFound},
	{application.ErrExecutionNotFound, http.StatusNotFound},
	{application.ErrEvidenceNotFound, http.StatusNotFound},
	{application.ErrTestPlanNotFound, http.StatusNotFound},
	{application.ErrSettingsNotFound, http.StatusNotFound},

	{application.ErrUsernameTaken, http.StatusConflict},
	{application.ErrEmailTaken, http.StatusConflict},
	{application.ErrProjectNameTaken, http.StatusConflict},
	{application.ErrMemberExists, http.StatusConflict},
	{application.ErrIssueHasDependents, http.StatusConflict},
	{application.ErrSettingsExists, http.StatusConflict},

	{application.ErrInvalidInvitation, http.StatusBadRequest},
	{application.ErrDependencyCycle, http.StatusBadRequest},
	{application.ErrIncorrectPassword, http.StatusBadRequest},
	{application.ErrMissingOldPassword, http.StatusBadRequest},

	{application.ErrInvitationDelivery, http.StatusBadGateway},
	{application.ErrStorageDisabled, http.StatusServiceUnavailable},
}

// respondError writes the status matching err. Unknown errors are logged
// and reported as 500 without their detail.
func respondError(c *gin.Context, err error) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Error: "validation failed", Fields: verr.Fields})
		return
	}
	for _, m := range statusBySentinel {
		if errors.Is(err, m.err) {
			c.JSON(m.status, response.ErrorResponse{Error: m.err.Error()})
			return
		}
	}
	log.WithError(err).WithFields(log.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error("request failed")
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
}

// bind decodes the request into dst and answers 400 on failure, naming
// each offending field.
func bind(c *gin.Context, dst any) bool {
	err := c.ShouldBind(dst)
	if err == nil {
		return true
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input"})
		return false
	}

	fields := make(map[string]string, len(verr))
	for _, fe := range verr {
		name := jsonName(fe.StructField())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "min":
			fields[name] = fmt.Sprintf("must be at least %s", fe.Param())
		case "max":
			fields[name] = fmt.Sprintf("must be at most %s", fe.Param())
		case "email":
			fields[name] = "must be a valid email address"
		case "oneof":
			fields[name] = fmt.Sprintf("must be one of [%s]", fe.Param())
		default:
			fields[name] = "is invalid"
		}
	}
	c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{Error: "validation failed", Fields: fields})
	return false
}

// jsonName turns a Go field name like ProductOwnerID into product_owner_id.
func jsonName(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func pathID(c *gin.Context, param string) (uint, bool) {
	id, err := utils.ParseIDParam(c, param)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + strings.ReplaceAll(param, "_", " ")})
		return 0, false
	}
	return id, true
}

// currentProject returns the project loaded by the access middleware.
func currentProject(c *gin.Context) (project.Project, bool) {
	p, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: application.ErrProjectNotFound.Error()})
		return project.Project{}, false
	}
	return p, true
}
