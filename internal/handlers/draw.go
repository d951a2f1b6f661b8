package handlers

import (
	"github.com/gin-gonic/gin"
	"hrtoolbox/internal/models"
)

func (h *HTTPHandler) drawData(c *gin.Context, winner *models.WinnerRecord, notice string) gin.H {
	snap := h.service.Snapshot(tenantID(c))
	return gin.H{
		"Winner":       winner,
		"Winners":      snap.Winners,
		"WinnerCount":  len(snap.Winners),
		"Remaining":    snap.Remaining,
		"Total":        len(snap.Participants),
		"AllowRepeats": snap.AllowRepeats,
		"Notice":       notice,
	}
}

// ShowDrawPage handles the request for the lucky draw page.
func (h *HTTPHandler) ShowDrawPage(c *gin.Context) {
	data := h.drawData(c, nil, "")
	data["title"] = "Lucky Draw"
	h.renderPage(c, data, "draw.html")
}

// PerformDraw handles the request to draw a winner.
func (h *HTTPHandler) PerformDraw(c *gin.Context) {
	result, err := h.service.Draw(tenantID(c))
	if err != nil {
		h.renderPartial(c, "draw_panel.html", h.drawData(c, nil, noticeFor(err)))
		return
	}
	h.renderPartial(c, "draw_panel.html", h.drawData(c, &result, ""))
}

// UpdateDrawSettings toggles repeat wins.
func (h *HTTPHandler) UpdateDrawSettings(c *gin.Context) {
	v := c.PostForm("allowRepeats")
	h.service.SetAllowRepeats(tenantID(c), v == "true" || v == "on")
	h.renderPartial(c, "draw_panel.html", h.drawData(c, nil, ""))
}

// ResetWinners clears the winner history.
func (h *HTTPHandler) ResetWinners(c *gin.Context) {
	h.service.ResetWinners(tenantID(c))
	h.renderPartial(c, "draw_panel.html", h.drawData(c, nil, ""))
}
