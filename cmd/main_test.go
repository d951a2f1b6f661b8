package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	t.Run("Test output reaches the writer", func(t *testing.T) {
		var buf bytes.Buffer
		l := initLogger(&buf)
		defer l.Close()

		logger.Errorf("team naming failed: %s", "deadline exceeded")
		logger.Infof("Performed cleanup of inactive sessions, removed %d.", 2)

		assert.Contains(t, buf.String(), "team naming failed: deadline exceeded")
		assert.Contains(t, buf.String(), "removed 2.")
	})
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(verbose bool) string {
		var buf bytes.Buffer
		prev := gin.DefaultWriter
		gin.DefaultWriter = &buf
		defer func() { gin.DefaultWriter = prev }()

		r := newRouter(verbose)
		r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		return buf.String()
	}

	t.Run("Test verbose writes access logs", func(t *testing.T) {
		assert.Contains(t, serve(true), "/healthz")
	})

	t.Run("Test quiet mode writes no access logs", func(t *testing.T) {
		assert.Empty(t, serve(false))
	})
}
