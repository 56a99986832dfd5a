package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/flowerbot/internal/domain/errors"
	"github.com/polkiloo/flowerbot/internal/server/http/dto"
)

// writeError renders the failure envelope with a status derived from err.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrOrderIDRequired), errors.Is(err, domainErrors.ErrInvalidOrderID):
		status = http.StatusBadRequest
	}
	c.JSON(status, dto.Result{Success: false, Error: err.Error()})
}

// lastPathSegment returns the last segment of path, or the one before it when
// the path ends with a slash.
func lastPathSegment(path string) string {
	parts := strings.Split(path, "/")
	last := parts[len(parts)-1]
	if last == "" && len(parts) > 1 {
		return parts[len(parts)-2]
	}
	return last
}
