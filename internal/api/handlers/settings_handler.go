package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/internal/domain/settings"
)

type SettingsHandler struct {
	svc *application.SettingsService
}

func NewSettingsHandler(svc *application.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetSite godoc
// @Summary Public branding
// @Tags site
// @Produce json
// @Success 200 {object} settings.SiteInfo
// @Router /site [get]
func (h *SettingsHandler) GetSite(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SiteInfo(c.Request.Context()))
}

// GetChoices godoc
// @Summary Enumerated field values
// @Tags site
// @Produce json
// @Success 200 {object} application.Catalog
// @Router /choices [get]
func (h *SettingsHandler) GetChoices(c *gin.Context) {
	c.JSON(http.StatusOK, application.Choices())
}

// GetSettings godoc
// @Summary Site settings
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} settings.SiteSettings
// @Failure 404 {object} response.ErrorResponse "Settings not created yet"
// @Router /admin/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	st, err := h.svc.GetSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// CreateSettings godoc
// @Summary Create the site settings row
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body settings.SettingsInput true "Settings"
// @Success 201 {object} settings.SiteSettings
// @Failure 409 {object} response.ErrorResponse "Settings already exist"
// @Router /admin/settings [post]
func (h *SettingsHandler) CreateSettings(c *gin.Context) {
	var input settings.SettingsInput
	if !bind(c, &input) {
		return
	}
	st, err := h.svc.CreateSettings(c, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// UpdateSettings godoc
// @Summary Replace the site settings
// @Description An omitted smtp_password keeps the stored one.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body settings.SettingsInput true "Settings"
// @Success 200 {object} settings.SiteSettings
// @Failure 404 {object} response.ErrorResponse "Settings not created yet"
// @Router /admin/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var input settings.SettingsInput
	if !bind(c, &input) {
		return
	}
	st, err := h.svc.UpdateSettings(c, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// UploadLogo godoc
// @Summary Replace the site logo
// @Tags admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} settings.SiteSettings
// @Failure 404 {object} response.ErrorResponse "Settings not created yet"
// @Failure 503 {object} response.ErrorResponse "Object storage disabled"
// @Router /admin/settings/logo [put]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	up, done, ok := formFile(c, "logo", true)
	if !ok {
		return
	}
	defer done()

	st, err := h.svc.UploadLogo(c, *up)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
