package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/leadquestion"
	"github.com/ringdesk/ringdesk/modules/crm/infrastructure/persistence/models"
	"github.com/ringdesk/ringdesk/pkg/composables"
)

const questionColumns = `id, tenant_id, question, order_index, required, choices, created_at, updated_at`

type LeadQuestionRepository struct{}

func NewLeadQuestionRepository() leadquestion.Repository {
	return &LeadQuestionRepository{}
}

func (r *LeadQuestionRepository) List(ctx context.Context) ([]*leadquestion.Question, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT `+questionColumns+`
		FROM lead_capture_questions
		WHERE tenant_id = $1
		ORDER BY order_index, created_at
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*leadquestion.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *LeadQuestionRepository) Create(ctx context.Context, q *leadquestion.Question) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}

	id := q.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	choices := q.Choices
	if choices == nil {
		choices = []string{}
	}
	now := time.Now()
	if err := tx.QueryRow(ctx, `
		INSERT INTO lead_capture_questions (id, tenant_id, question, order_index, required, choices, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, tenant_id, created_at, updated_at
	`,
		id,
		tenantID,
		q.Question,
		q.OrderIndex,
		q.Required,
		choices,
		now,
		now,
	).Scan(&q.ID, &q.TenantID, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to create lead capture question")
	}
	return nil
}

func (r *LeadQuestionRepository) Update(ctx context.Context, id uuid.UUID, params *leadquestion.UpdateParams) (*leadquestion.Question, error) {
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
		if params.Question != nil {
			set = append(set, fmt.Sprintf("question = $%d", argPos))
			args = append(args, *params.Question)
			argPos++
		}
		if params.OrderIndex != nil {
			set = append(set, fmt.Sprintf("order_index = $%d", argPos))
			args = append(args, *params.OrderIndex)
			argPos++
		}
		if params.Required != nil {
			set = append(set, fmt.Sprintf("required = $%d", argPos))
			args = append(args, *params.Required)
			argPos++
		}
		if params.Choices != nil {
			set = append(set, fmt.Sprintf("choices = $%d", argPos))
			args = append(args, *params.Choices)
		}
	}

	q, err := scanQuestion(tx.QueryRow(ctx, `
		UPDATE lead_capture_questions
		SET `+strings.Join(set, ", ")+`
		WHERE tenant_id = $1 AND id = $2
		RETURNING `+questionColumns+`
	`, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, leadquestion.ErrNotFound
	}
	return q, err
}

func (r *LeadQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM lead_capture_questions WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leadquestion.ErrNotFound
	}
	return nil
}

func scanQuestion(row pgx.Row) (*leadquestion.Question, error) {
	var dbRow models.LeadCaptureQuestion
	if err := row.Scan(
		&dbRow.ID,
		&dbRow.TenantID,
		&dbRow.Question,
		&dbRow.OrderIndex,
		&dbRow.Required,
		&dbRow.Choices,
		&dbRow.CreatedAt,
		&dbRow.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return toDomainQuestion(&dbRow), nil
}
