package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"hrtoolbox/internal/services"
)

func (h *HTTPHandler) groupData(c *gin.Context, groupSize int, notice string) gin.H {
	snap := h.service.Snapshot(tenantID(c))
	return gin.H{
		"Groups":        snap.Groups,
		"Total":         len(snap.Participants),
		"GroupSize":     groupSize,
		"NamingEnabled": h.service.NamingEnabled(),
		"Naming":        snap.Naming,
		"Notice":        notice,
	}
}

// ShowGroupsPage handles the request for the team generator page.
func (h *HTTPHandler) ShowGroupsPage(c *gin.Context) {
	data := h.groupData(c, h.defaultGroupSize, "")
	data["title"] = "Team Generator"
	h.renderPage(c, data, "groups.html")
}

// GenerateGroups partitions the roster into random groups.
func (h *HTTPHandler) GenerateGroups(c *gin.Context) {
	groupSize, err := strconv.Atoi(c.PostForm("groupSize"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid group size")
		return
	}

	if _, err := h.service.GenerateGroups(tenantID(c), groupSize); err != nil {
		h.renderPartial(c, "group_list.html", h.groupData(c, groupSize, noticeFor(err)))
		return
	}
	h.renderPartial(c, "group_list.html", h.groupData(c, groupSize, ""))
}

// NameGroups asks the AI service for team names and mottos.
func (h *HTTPHandler) NameGroups(c *gin.Context) {
	groupSize := h.defaultGroupSize
	if v, err := strconv.Atoi(c.PostForm("groupSize")); err == nil {
		groupSize = v
	}

	if _, err := h.service.NameGroups(c.Request.Context(), tenantID(c)); err != nil {
		h.renderPartial(c, "group_list.html", h.groupData(c, groupSize, noticeFor(err)))
		return
	}
	h.renderPartial(c, "group_list.html", h.groupData(c, groupSize, ""))
}

// ExportGroupsCSV handles the request to download the groups as a CSV file.
func (h *HTTPHandler) ExportGroupsCSV(c *gin.Context) {
	tenant := tenantID(c)
	if len(h.service.GetGroups(tenant)) == 0 {
		c.String(http.StatusNotFound, "No groups have been generated")
		return
	}

	buf := new(bytes.Buffer)
	if err := h.service.ExportGroupsCSV(tenant, buf); err != nil {
		logger.Infof("Error writing CSV: %v", err)
		c.String(http.StatusInternalServerError, "Error writing CSV")
		return
	}

	c.Header("Content-Disposition", "attachment;filename="+services.CSVFilename(h.now()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportGroupsText returns the groups as plain text for the clipboard.
func (h *HTTPHandler) ExportGroupsText(c *gin.Context) {
	tenant := tenantID(c)
	if len(h.service.GetGroups(tenant)) == 0 {
		c.String(http.StatusNotFound, "No groups have been generated")
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.service.GroupsText(tenant)))
}
