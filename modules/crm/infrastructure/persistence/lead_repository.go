package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/modules/crm/infrastructure/persistence/models"
	"github.com/ringdesk/ringdesk/pkg/composables"
	"github.com/ringdesk/ringdesk/pkg/repo"
)

const leadColumns = `id, tenant_id, name, phone, status, priority, notes, created_at, updated_at`

type LeadRepository struct{}

func NewLeadRepository() lead.Repository {
	return &LeadRepository{}
}

func (r *LeadRepository) List(ctx context.Context, params *lead.FindParams) ([]*lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	where := []string{"tenant_id = $1"}
	args := []interface{}{tenantID}
	argPos := 2
	if params != nil {
		if params.Status != "" {
			where = append(where, fmt.Sprintf("status = $%d", argPos))
			args = append(args, string(params.Status))
			argPos++
		}
		if params.Priority != "" {
			where = append(where, fmt.Sprintf("priority = $%d", argPos))
			args = append(args, string(params.Priority))
		}
	}

	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC
	`
	if params != nil {
		query += " " + repo.FormatLimitOffset(params.Limit, params.Offset)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	l, err := scanLead(tx.QueryRow(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, lead.ErrNotFound
	}
	return l, err
}

func (r *LeadRepository) CountByStatus(ctx context.Context, status lead.Status) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM leads WHERE tenant_id = $1 AND status = $2`,
		tenantID, string(status),
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	id := l.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	if l.Status == "" {
		l.Status = lead.StatusNew
	}
	if l.Priority == "" {
		l.Priority = lead.PriorityNormal
	}
	now := time.Now()
	if err := tx.QueryRow(ctx, `
		INSERT INTO leads (id, tenant_id, name, phone, status, priority, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, tenant_id, created_at, updated_at
	`,
		id,
		tenantID,
		l.Name,
		nullString(l.Phone),
		string(l.Status),
		string(l.Priority),
		nullString(l.Notes),
		now,
		now,
	).Scan(&l.ID, &l.TenantID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to create lead")
	}
	return nil
}

func (r *LeadRepository) Update(ctx context.Context, id uuid.UUID, params *lead.UpdateParams) (*lead.Lead, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	set := []string{"updated_at = now()"}
	args := []interface{}{tenantID, id}
	argPos := 3
	if params != nil {
		if params.Name != nil {
			set = append(set, fmt.Sprintf("name = $%d", argPos))
			args = append(args, *params.Name)
			argPos++
		}
		if params.Phone != nil {
			set = append(set, fmt.Sprintf("phone = $%d", argPos))
			args = append(args, nullString(*params.Phone))
			argPos++
		}
		if params.Status != nil {
			set = append(set, fmt.Sprintf("status = $%d", argPos))
			args = append(args, string(*params.Status))
			argPos++
		}
		if params.Priority != nil {
			set = append(set, fmt.Sprintf("priority = $%d", argPos))
			args = append(args, string(*params.Priority))
			argPos++
		}
		if params.Notes != nil {
			set = append(set, fmt.Sprintf("notes = $%d", argPos))
			args = append(args, nullString(*params.Notes))
		}
	}

	l, err := scanLead(tx.QueryRow(ctx, `
		UPDATE leads
		SET `+strings.Join(set, ", ")+`
		WHERE tenant_id = $1 AND id = $2
		RETURNING `+leadColumns+`
	`, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, lead.ErrNotFound
	}
	return l, err
}

func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM leads WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return lead.ErrNotFound
	}
	return nil
}

func scanLead(row pgx.Row) (*lead.Lead, error) {
	var dbRow models.Lead
	if err := row.Scan(
		&dbRow.ID,
		&dbRow.TenantID,
		&dbRow.Name,
		&dbRow.Phone,
		&dbRow.Status,
		&dbRow.Priority,
		&dbRow.Notes,
		&dbRow.CreatedAt,
		&dbRow.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return toDomainLead(&dbRow), nil
}
