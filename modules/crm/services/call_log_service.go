package services

import (
	"context"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/calllog"
)

// analyticsExportCap bounds one CSV export. Older rows are simply not
// included.
const analyticsExportCap = 1000

type CallLogService struct {
	repo calllog.Repository
}

func NewCallLogService(repo calllog.Repository) *CallLogService {
	return &CallLogService{repo: repo}
}

func (s *CallLogService) List(ctx context.Context, params *calllog.FindParams) ([]*calllog.CallLog, error) {
	return s.repo.List(ctx, params)
}

// ListForExport returns the newest call logs for the analytics report,
// capped at analyticsExportCap rows.
func (s *CallLogService) ListForExport(ctx context.Context) ([]*calllog.CallLog, error) {
	return s.repo.List(ctx, &calllog.FindParams{Limit: analyticsExportCap})
}

func (s *CallLogService) Create(ctx context.Context, log *calllog.CallLog) error {
	return s.repo.Create(ctx, log)
}
