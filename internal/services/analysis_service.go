package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"ethocli/internal/dataprocessing"
	"ethocli/internal/infrastructure"
	"ethocli/internal/observation"
	"ethocli/internal/palette"
	"ethocli/pkg/contracts/domain"
)

// AnalysisService orchestrates the observation analysis pipeline:
// merging the per-file row sets, extracting focal-follow ranges for
// the merged set and for each file, running the consistency checks,
// and assigning a color to every focal type.
type AnalysisService struct {
	logger  *slog.Logger
	merger  *dataprocessing.Merger
	metrics *infrastructure.AnalysisMetrics
}

// NewAnalysisService creates an analysis service. metrics may be nil
// when telemetry is not initialized (CLI mode, tests).
func NewAnalysisService(logger *slog.Logger, metrics *infrastructure.AnalysisMetrics) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		logger:  infrastructure.WithComponent(logger, "analysis_service"),
		merger:  dataprocessing.NewMerger(),
		metrics: metrics,
	}
}

// Analyze runs the full pipeline over the given per-file row sets and
// returns the report. It never fails: validation findings are carried
// in the report, not as an error.
func (s *AnalysisService) Analyze(ctx context.Context, sets []domain.PerFileRowSet) *domain.AnalysisReport {
	tracer := otel.Tracer(infrastructure.MeterName)
	ctx, span := tracer.Start(ctx, "analysis.run",
		trace.WithAttributes(attribute.Int("analysis.file_count", len(sets))))
	defer span.End()

	start := time.Now()
	analysisID := uuid.New().String()
	logger := infrastructure.LoggerWithContext(ctx, s.logger).
		With(slog.String("analysis_id", analysisID))

	merged, stats := s.merger.MergeWithStats(sets)

	files := make([]domain.FileSummary, 0, len(sets))
	fileRanges := make(map[string][]domain.FocalFollowRange, len(sets))
	colorInputs := make([][]domain.FocalFollowRange, 0, len(sets)+1)

	for _, set := range sets {
		ranges := observation.ExtractRanges(set.Rows)
		fileRanges[set.FileName] = ranges
		colorInputs = append(colorInputs, ranges)
		files = append(files, domain.FileSummary{
			FileName: set.FileName,
			RowCount: len(set.Rows),
		})
	}

	mergedRanges := observation.ExtractRanges(merged)
	colorInputs = append(colorInputs, mergedRanges)

	validations := observation.RunAllValidations(merged, sets)

	report := &domain.AnalysisReport{
		AnalysisID:   analysisID,
		Files:        files,
		MergedRanges: mergedRanges,
		FileRanges:   fileRanges,
		Validations:  validations,
		Colors:       palette.AssignColors(colorInputs...),
		GeneratedAt:  time.Now().UTC(),
	}

	s.recordMetrics(ctx, report, stats, time.Since(start))

	logger.InfoContext(ctx, "analysis completed",
		slog.Int("files", len(sets)),
		slog.Int("merged_rows", stats.TotalRows),
		slog.Int("merged_ranges", len(mergedRanges)),
		slog.Bool("passed", report.Passed()),
		slog.Duration("duration", time.Since(start)))

	return report
}

func (s *AnalysisService) recordMetrics(ctx context.Context, report *domain.AnalysisReport, stats dataprocessing.MergeStatistics, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	passed := attribute.Bool("passed", report.Passed())
	s.metrics.AnalysesTotal.Add(ctx, 1, metric.WithAttributes(passed))
	s.metrics.AnalysisDuration.Record(ctx, elapsed.Seconds())
	s.metrics.RowsProcessed.Add(ctx, int64(stats.TotalRows))

	for _, v := range report.Validations {
		if !v.Passed {
			s.metrics.ValidationFailures.Add(ctx, 1,
				metric.WithAttributes(attribute.String("check", v.Check)))
		}
	}
}
