package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/calllog"
	"github.com/ringdesk/ringdesk/modules/crm/infrastructure/persistence/models"
	"github.com/ringdesk/ringdesk/pkg/composables"
	"github.com/ringdesk/ringdesk/pkg/repo"
)

type CallLogRepository struct{}

func NewCallLogRepository() calllog.Repository {
	return &CallLogRepository{}
}

func (r *CallLogRepository) List(ctx context.Context, params *calllog.FindParams) ([]*calllog.CallLog, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, call_sid, from_number, to_number, status, direction, created_at
		FROM call_logs
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`
	if params != nil {
		query += " " + repo.FormatLimitOffset(params.Limit, params.Offset)
	}

	rows, err := tx.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*calllog.CallLog
	for rows.Next() {
		var row models.CallLog
		if err := rows.Scan(
			&row.ID,
			&row.TenantID,
			&row.CallSid,
			&row.FromNumber,
			&row.ToNumber,
			&row.Status,
			&row.Direction,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, toDomainCallLog(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *CallLogRepository) Create(ctx context.Context, log *calllog.CallLog) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	id := log.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := log.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if err := tx.QueryRow(ctx, `
		INSERT INTO call_logs (id, tenant_id, call_sid, from_number, to_number, status, direction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, tenant_id, created_at
	`,
		id,
		tenantID,
		log.CallSid,
		log.From,
		log.To,
		log.Status,
		log.Direction,
		createdAt,
	).Scan(&log.ID, &log.TenantID, &log.CreatedAt); err != nil {
		return errors.Wrap(err, "failed to create call log")
	}
	return nil
}
