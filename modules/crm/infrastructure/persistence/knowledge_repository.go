package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/knowledge"
	"github.com/ringdesk/ringdesk/modules/crm/infrastructure/persistence/models"
	"github.com/ringdesk/ringdesk/pkg/composables"
)

const knowledgeColumns = `id, tenant_id, title, content, created_at, updated_at`

type KnowledgeRepository struct{}

func NewKnowledgeRepository() knowledge.Repository {
	return &KnowledgeRepository{}
}

func (r *KnowledgeRepository) List(ctx context.Context) ([]*knowledge.Entry, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+knowledgeColumns+`
		FROM knowledge_entries
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*knowledge.Entry
	for rows.Next() {
		e, err := scanKnowledgeEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *KnowledgeRepository) Create(ctx context.Context, e *knowledge.Entry) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now()
	if err := tx.QueryRow(ctx, `
		INSERT INTO knowledge_entries (id, tenant_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, tenant_id, created_at, updated_at
	`,
		id,
		tenantID,
		nullString(e.Title),
		e.Content,
		now,
		now,
	).Scan(&e.ID, &e.TenantID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to create knowledge entry")
	}
	return nil
}

func (r *KnowledgeRepository) Update(ctx context.Context, id uuid.UUID, params *knowledge.UpdateParams) (*knowledge.Entry, error) {
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
		if params.Title != nil {
			set = append(set, fmt.Sprintf("title = $%d", argPos))
			args = append(args, nullString(*params.Title))
			argPos++
		}
		if params.Content != nil {
			set = append(set, fmt.Sprintf("content = $%d", argPos))
			args = append(args, *params.Content)
		}
	}

	e, err := scanKnowledgeEntry(tx.QueryRow(ctx, `
		UPDATE knowledge_entries
		SET `+strings.Join(set, ", ")+`
		WHERE tenant_id = $1 AND id = $2
		RETURNING `+knowledgeColumns+`
	`, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, knowledge.ErrNotFound
	}
	return e, err
}

func (r *KnowledgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM knowledge_entries WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return knowledge.ErrNotFound
	}
	return nil
}

func scanKnowledgeEntry(row pgx.Row) (*knowledge.Entry, error) {
	var dbRow models.KnowledgeEntry
	if err := row.Scan(
		&dbRow.ID,
		&dbRow.TenantID,
		&dbRow.Title,
		&dbRow.Content,
		&dbRow.CreatedAt,
		&dbRow.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return toDomainKnowledgeEntry(&dbRow), nil
}
