package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"flightgroup-service/internal/domain/entity"
	"flightgroup-service/internal/domain/repository"
	"flightgroup-service/pkg/logger"
	"flightgroup-service/pkg/metrics"
)

// GroupingProcessor runs the full table pass: fetch, extract, group, build
// plan, apply, report.
type GroupingProcessor struct {
	bookingRepo repository.BookingRepository
	reportRepo  repository.RunReportRepository
	logger      logger.Logger
	metrics     *metrics.Metrics
	window      time.Duration
	maxEntries  int
}

// NewGroupingProcessor creates a new grouping processor. reportRepo and
// metrics may be nil when run archiving or instrumentation is disabled.
func NewGroupingProcessor(
	bookingRepo repository.BookingRepository,
	reportRepo repository.RunReportRepository,
	log logger.Logger,
	m *metrics.Metrics,
	window time.Duration,
	maxEntries int,
) *GroupingProcessor {
	return &GroupingProcessor{
		bookingRepo: bookingRepo,
		reportRepo:  reportRepo,
		logger:      log,
		metrics:     m,
		window:      window,
		maxEntries:  maxEntries,
	}
}

// ProcessTable performs one grouping pass over a snapshot of the booking
// table. Rows that fail extraction are skipped and reported; any other
// failure aborts the run before the plan is applied. The returned report is
// complete only when err is nil.
func (p *GroupingProcessor) ProcessTable(ctx context.Context) (*entity.RunReport, error) {
	if err := ValidateGroupingParams(p.window, p.maxEntries); err != nil {
		return nil, err
	}

	report := &entity.RunReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	rows, err := p.bookingRepo.FetchAll(ctx)
	if err != nil {
		p.countError("fetch")
		return nil, err
	}
	report.RowsFetched = len(rows)
	p.logger.Info("Fetched booking snapshot", "rows", len(rows))

	records := make([]entity.FlightRecord, 0, len(rows))
	for _, row := range rows {
		record, err := ExtractRecord(row, p.maxEntries)
		if err != nil {
			var extractErr *ExtractionError
			if errors.As(err, &extractErr) {
				p.logger.Warn("Skipping row",
					"rowId", extractErr.RowID,
					"kind", string(extractErr.Kind),
					"error", err)
				report.RowsExcluded = append(report.RowsExcluded, entity.ExcludedRow{
					RowID:  extractErr.RowID,
					Reason: err.Error(),
				})
				continue
			}
			p.countError("extract")
			return nil, err
		}
		records = append(records, record)
	}
	report.RowsExtracted = len(records)

	groups, err := GroupRecords(records, p.window, p.maxEntries)
	if err != nil {
		p.countError("group")
		return nil, err
	}
	if err := VerifyPartition(records, groups, p.maxEntries); err != nil {
		p.countError("verify")
		return nil, err
	}

	report.GroupsFormed = len(groups)
	for _, g := range groups {
		if g.Size() == 1 {
			report.SingletonCount++
		}
	}

	plan := BuildPlan(groups, p.maxEntries)
	report.InsertsEmitted = len(plan.Inserts)
	report.UpdatesEmitted = len(plan.Updates)

	if !plan.Empty() {
		if err := p.bookingRepo.ApplyPlan(ctx, plan); err != nil {
			p.countError("apply")
			return nil, err
		}
	}

	report.Duration = time.Since(report.StartedAt)
	p.observe(report)

	if p.reportRepo != nil {
		if err := p.reportRepo.Save(ctx, report); err != nil {
			// The pass already committed; a lost archive entry is not fatal.
			p.logger.Error("Failed to archive run report", "runId", report.ID, "error", err)
			p.countError("report")
		}
	}

	p.logger.Info("Grouping pass complete",
		"runId", report.ID,
		"rowsFetched", report.RowsFetched,
		"rowsExcluded", len(report.RowsExcluded),
		"groups", report.GroupsFormed,
		"singletons", report.SingletonCount,
		"inserts", report.InsertsEmitted,
		"updates", report.UpdatesEmitted,
		"duration", report.Duration)

	return report, nil
}

func (p *GroupingProcessor) observe(report *entity.RunReport) {
	if p.metrics == nil {
		return
	}
	p.metrics.RowsProcessed.Add(float64(report.RowsFetched))
	p.metrics.RowsExcluded.Add(float64(len(report.RowsExcluded)))
	p.metrics.GroupsFormed.Add(float64(report.GroupsFormed))
	p.metrics.SingletonGroups.Add(float64(report.SingletonCount))
	p.metrics.InsertsEmitted.Add(float64(report.InsertsEmitted))
	p.metrics.UpdatesEmitted.Add(float64(report.UpdatesEmitted))
	p.metrics.RunDuration.Observe(report.Duration.Seconds())
}

func (p *GroupingProcessor) countError(operation string) {
	if p.metrics == nil {
		return
	}
	p.metrics.ErrorsCount.WithLabelValues(operation).Inc()
}
