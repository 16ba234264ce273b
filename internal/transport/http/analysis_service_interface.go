package http

import (
	"context"

	"ethocli/pkg/contracts/domain"
)

// AnalysisServiceInterface defines the interface for running
// observation analyses. The handler depends on this rather than the
// concrete service so tests can substitute a stub.
type AnalysisServiceInterface interface {
	Analyze(ctx context.Context, sets []domain.PerFileRowSet) *domain.AnalysisReport
}
