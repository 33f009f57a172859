package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Index serves the single-page application's entry document from the built
// front-end bundle. During development the SPA dev server is used instead.
func (h *Handler) Index(c *gin.Context) {
	entry := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(entry); err != nil {
		c.String(http.StatusNotFound, "front-end bundle not built")
		return
	}
	c.File(entry)
}
