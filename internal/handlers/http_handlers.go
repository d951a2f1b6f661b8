package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"hrtoolbox/internal/models"
	"hrtoolbox/internal/services"
)

const defaultMaxUploadBytes = 1 << 20

// HTTPHandler holds the dependencies for the HTTP handlers, like the toolbox service.
type HTTPHandler struct {
	service          *services.ToolboxService
	templates        *template.Template
	defaultGroupSize int
	maxUploadBytes   int64
	now              func() time.Time
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(service *services.ToolboxService, templates *template.Template, defaultGroupSize int, maxUploadBytes int64) *HTTPHandler {
	if defaultGroupSize < 1 {
		defaultGroupSize = 3
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &HTTPHandler{
		service:          service,
		templates:        templates,
		defaultGroupSize: defaultGroupSize,
		maxUploadBytes:   maxUploadBytes,
		now:              time.Now,
	}
}

// renderPage is a helper to perform a two-step template rendering.
// It first executes the content template into a buffer, then executes the main
// layout template, passing the rendered content as a variable.
func (h *HTTPHandler) renderPage(c *gin.Context, pageData gin.H, contentTmpl string) {
	buf := new(bytes.Buffer)
	err := h.templates.ExecuteTemplate(buf, contentTmpl, pageData)
	if err != nil {
		logger.Infof("Error executing content template %s: %v", contentTmpl, err)
		c.String(http.StatusInternalServerError, "Template rendering error")
		return
	}

	pageData["PageContent"] = template.HTML(buf.String())

	c.Header("Content-Type", "text/html; charset=utf-8")
	err = h.templates.ExecuteTemplate(c.Writer, "layout.html", pageData)
	if err != nil {
		logger.Infof("Error executing layout template: %v", err)
		c.String(http.StatusInternalServerError, "Template rendering error")
	}
}

// renderPartial renders an htmx fragment.
func (h *HTTPHandler) renderPartial(c *gin.Context, tmpl string, data gin.H) {
	buf := new(bytes.Buffer)
	if err := h.templates.ExecuteTemplate(buf, tmpl, data); err != nil {
		logger.Infof("Error executing template %s: %v", tmpl, err)
		c.String(http.StatusInternalServerError, "Template error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// RegisterPublicRoutes registers routes that need no session.
func (h *HTTPHandler) RegisterPublicRoutes(router gin.IRouter) {
	router.GET("/healthz", h.Health)
}

// RegisterTenantRoutes registers all session-scoped routes.
func (h *HTTPHandler) RegisterTenantRoutes(router gin.IRouter) {
	router.GET("/", h.ShowParticipantsPage)
	router.GET("/participants", h.ShowParticipantsPage)
	router.POST("/participants", h.AddParticipants)
	router.POST("/participants/upload", h.UploadParticipants)
	router.POST("/participants/demo", h.LoadDemo)
	router.POST("/participants/dedupe", h.Deduplicate)
	router.POST("/participants/clear", h.ClearParticipants)
	router.POST("/participants/delete/:id", h.RemoveParticipant)

	router.GET("/draw", h.ShowDrawPage)
	router.POST("/draw", h.PerformDraw)
	router.POST("/draw/settings", h.UpdateDrawSettings)
	router.POST("/draw/reset", h.ResetWinners)

	router.GET("/groups", h.ShowGroupsPage)
	router.POST("/groups", h.GenerateGroups)
	router.POST("/groups/name", h.NameGroups)
	router.GET("/groups/export.csv", h.ExportGroupsCSV)
	router.GET("/groups/export.txt", h.ExportGroupsText)

	router.POST("/reset", h.ResetSession)
}

// Health reports liveness.
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.service.SessionCount()})
}

// noticeFor turns a service error into a message for the user.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyPool):
		return "Everyone has already won! Reset the winners or allow repeats."
	case errors.Is(err, models.ErrInvalidGroupSize):
		return "Group size must be at least 1."
	case errors.Is(err, models.ErrNoGroups):
		return "Generate groups first."
	case errors.Is(err, models.ErrNamingUnavailable):
		return "AI team naming is not configured."
	case errors.Is(err, models.ErrNamingInFlight):
		return "AI team naming is already running."
	case errors.Is(err, models.ErrStaleGroups):
		return "Groups changed while AI naming was running. Please try again."
	case errors.Is(err, models.ErrNamingService):
		return "AI naming failed. Check the API key or try again later."
	default:
		return "Something went wrong."
	}
}
