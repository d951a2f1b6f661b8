package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

func (h *HTTPHandler) participantData(c *gin.Context, notice string) gin.H {
	snap := h.service.Snapshot(tenantID(c))
	return gin.H{
		"Participants":  snap.Participants,
		"NameCounts":    snap.NameCounts,
		"HasDuplicates": snap.HasDuplicates,
		"Count":         len(snap.Participants),
		"Notice":        notice,
	}
}

// ShowParticipantsPage handles the request for the participant list page.
func (h *HTTPHandler) ShowParticipantsPage(c *gin.Context) {
	data := h.participantData(c, "")
	data["title"] = "Participants"
	h.renderPage(c, data, "participants.html")
}

// AddParticipants handles names pasted into the text area.
func (h *HTTPHandler) AddParticipants(c *gin.Context) {
	res := h.service.ImportText(tenantID(c), c.PostForm("names"))
	notice := ""
	if len(res.Added) == 0 {
		notice = "No names found."
	}
	h.renderPartial(c, "participant_list.html", h.participantData(c, notice))
}

// UploadParticipants handles a CSV or text file upload.
func (h *HTTPHandler) UploadParticipants(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+4096)
	file, _, err := c.Request.FormFile("participantFile")
	if err != nil {
		c.String(http.StatusBadRequest, "Error retrieving file: %v", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		c.String(http.StatusBadRequest, "Error reading file: %v", err)
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		c.String(http.StatusBadRequest, "File is larger than %d bytes", h.maxUploadBytes)
		return
	}

	res := h.service.ImportFile(tenantID(c), string(content))
	logger.Infof("Imported %d participants from file for tenant: %s", len(res.Added), tenantID(c))
	h.renderPartial(c, "participant_list.html", h.participantData(c, fmt.Sprintf("Imported %d names.", len(res.Added))))
}

// LoadDemo appends the demo roster.
func (h *HTTPHandler) LoadDemo(c *gin.Context) {
	res := h.service.LoadDemo(tenantID(c))
	h.renderPartial(c, "participant_list.html", h.participantData(c, fmt.Sprintf("Loaded %d demo names.", len(res.Added))))
}

// Deduplicate removes repeated names.
func (h *HTTPHandler) Deduplicate(c *gin.Context) {
	removed := h.service.Deduplicate(tenantID(c))
	h.renderPartial(c, "participant_list.html", h.participantData(c, fmt.Sprintf("Removed %d duplicates.", removed)))
}

// ClearParticipants empties the roster.
func (h *HTTPHandler) ClearParticipants(c *gin.Context) {
	h.service.ClearParticipants(tenantID(c))
	h.renderPartial(c, "participant_list.html", h.participantData(c, ""))
}

// RemoveParticipant removes a single participant.
func (h *HTTPHandler) RemoveParticipant(c *gin.Context) {
	h.service.RemoveParticipant(tenantID(c), c.Param("id"))
	h.renderPartial(c, "participant_list.html", h.participantData(c, ""))
}

// ResetSession discards everything stored for the session.
func (h *HTTPHandler) ResetSession(c *gin.Context) {
	h.service.ClearSession(tenantID(c))
	c.Redirect(http.StatusSeeOther, "/")
}
