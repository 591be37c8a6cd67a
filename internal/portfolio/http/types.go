package http

import (
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/internal/portfolio/service"
)

type Handler struct {
	svc    *service.PortfolioService
	logger *zap.Logger
}

func New(svc *service.PortfolioService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}
