package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/infrastructure/persistence/models"
	"github.com/ringdesk/ringdesk/pkg/composables"
	"github.com/ringdesk/ringdesk/pkg/repo"
)

type ClientRepository struct{}

func NewClientRepository() client.Repository {
	return &ClientRepository{}
}

func (r *ClientRepository) List(ctx context.Context, params *client.FindParams) ([]*client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, name, email, phone, created_at, updated_at
		FROM clients
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

	var results []*client.Client
	byID := make(map[uuid.UUID]*client.Client)
	for rows.Next() {
		var row models.Client
		if err := rows.Scan(
			&row.ID,
			&row.TenantID,
			&row.Name,
			&row.Email,
			&row.Phone,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		c := toDomainClient(&row)
		results = append(results, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return results, nil
	}

	if err := r.attachProjects(ctx, tx, tenantID, byID); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ClientRepository) attachProjects(
	ctx context.Context,
	tx repo.Tx,
	tenantID uuid.UUID,
	byID map[uuid.UUID]*client.Client,
) error {
	ids := make([]uuid.UUID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	rows, err := tx.Query(ctx, `
		SELECT id, tenant_id, client_id, name, status, created_at
		FROM projects
		WHERE tenant_id = $1 AND client_id = ANY($2)
		ORDER BY created_at DESC
	`, tenantID, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row models.Project
		if err := rows.Scan(
			&row.ID,
			&row.TenantID,
			&row.ClientID,
			&row.Name,
			&row.Status,
			&row.CreatedAt,
		); err != nil {
			return err
		}
		if c, ok := byID[row.ClientID]; ok {
			c.Projects = append(c.Projects, toDomainProject(&row))
		}
	}
	return rows.Err()
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	var row models.Client
	if err := tx.QueryRow(ctx, `
		SELECT id, tenant_id, name, email, phone, created_at, updated_at
		FROM clients
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id).Scan(
		&row.ID,
		&row.TenantID,
		&row.Name,
		&row.Email,
		&row.Phone,
		&row.CreatedAt,
		&row.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	c := toDomainClient(&row)
	if err := r.attachProjects(ctx, tx, tenantID, map[uuid.UUID]*client.Client{c.ID: c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
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
		`SELECT COUNT(*) FROM clients WHERE tenant_id = $1`,
		tenantID,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClientRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
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
		`SELECT COUNT(*) FROM clients WHERE tenant_id = $1 AND created_at >= $2`,
		tenantID, since,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now()
	if err := tx.QueryRow(ctx, `
		INSERT INTO clients (id, tenant_id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, tenant_id, created_at, updated_at
	`,
		id,
		tenantID,
		c.Name,
		nullString(c.Email),
		nullString(c.Phone),
		now,
		now,
	).Scan(&c.ID, &c.TenantID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to create client")
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM clients WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return client.ErrNotFound
	}
	return nil
}
