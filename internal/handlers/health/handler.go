package health

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Handler reports whether the dataset files can be reached.
type Handler struct {
	paths []string
}

func NewHandler(paths ...string) *Handler {
	return &Handler{paths: paths}
}

// Health
// @Summary Service health
// @Description Checks that every dataset file exists
// @Tags health
// @Produce json
// @Success 200
// @Failure 503
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	for _, p := range h.paths {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			err = fmt.Errorf("%s is a directory", p)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
