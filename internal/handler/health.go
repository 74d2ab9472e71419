package handler

import (
	"context"

	"github.com/pkordes/article-sections/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetReady handles GET /readyz.
// It returns 200 only when the database answers a ping.
func (s *Server) GetReady(ctx context.Context, _ gen.GetReadyRequestObject) (gen.GetReadyResponseObject, error) {
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			s.logger.WarnContext(ctx, "readiness check failed", "error", err)
			return gen.GetReady503JSONResponse(unavailableBody()), nil
		}
	}
	return gen.GetReady200JSONResponse{Status: "ready"}, nil
}
