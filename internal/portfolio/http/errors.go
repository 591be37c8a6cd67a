package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
	"github.com/personalweb/portfolio-backend/internal/portfolio/store"
)

const persistWarning = "change applied but not saved to the backing store"

// respondError maps service errors onto statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": verr.Error(), "field": verr.Field})
	case errors.Is(err, domain.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	case errors.Is(err, portfolio.ErrRemote):
		h.logger.Error("remote store failure", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "remote store unavailable"})
	default:
		h.logger.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}

// persisted reports whether err is nil or only a failed write-back. In the
// latter case the response carries a warning.
func persisted(err error) (ok bool, warning string) {
	if err == nil {
		return true, ""
	}
	if errors.Is(err, store.ErrPersist) {
		return true, persistWarning
	}
	return false, ""
}

// facade resolves the request's facade or answers 500.
func (h *Handler) facade(c *gin.Context) (*portfolio.Facade, bool) {
	f, err := portfolio.Access(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return f, true
}
