package repository

import (
	"context"

	"flightgroup-service/internal/domain/entity"
)

// RunReportRepository defines the interface for archiving run reports.
type RunReportRepository interface {
	Save(ctx context.Context, report *entity.RunReport) error
}
