package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/ringdesk/ringdesk/modules/core/domain/entities/business"
	"github.com/ringdesk/ringdesk/modules/core/infrastructure/persistence/models"
	"github.com/ringdesk/ringdesk/pkg/composables"
)

const businessColumns = `id, name, email, notification_phone_number, twilio_phone_number, created_at, updated_at`

type BusinessRepository struct{}

func NewBusinessRepository() business.Repository {
	return &BusinessRepository{}
}

func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		SELECT `+businessColumns+`
		FROM businesses
		WHERE id = $1
	`, id)
	return scanBusiness(row)
}

func (r *BusinessRepository) First(ctx context.Context) (*business.Business, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		SELECT `+businessColumns+`
		FROM businesses
		ORDER BY created_at
		LIMIT 1
	`)
	return scanBusiness(row)
}

func (r *BusinessRepository) GetByTwilioNumber(ctx context.Context, number string) (*business.Business, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		SELECT `+businessColumns+`
		FROM businesses
		WHERE twilio_phone_number = $1
	`, number)
	return scanBusiness(row)
}

func (r *BusinessRepository) UpdateNotificationPhone(ctx context.Context, id uuid.UUID, phone string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `
		UPDATE businesses
		SET notification_phone_number = $2, updated_at = now()
		WHERE id = $1
	`, id, phone)
	if err != nil {
		return errors.Wrap(err, "failed to update notification phone")
	}
	if tag.RowsAffected() == 0 {
		return business.ErrNotFound
	}
	return nil
}

func (r *BusinessRepository) Create(ctx context.Context, b *business.Business) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	dbRow := toDBBusiness(b)
	if dbRow.ID == uuid.Nil {
		dbRow.ID = uuid.New()
	}
	if dbRow.CreatedAt.IsZero() {
		dbRow.CreatedAt = time.Now()
	}
	dbRow.UpdatedAt = dbRow.CreatedAt
	if err := tx.QueryRow(ctx, `
		INSERT INTO businesses (id, name, email, notification_phone_number, twilio_phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`,
		dbRow.ID,
		dbRow.Name,
		dbRow.Email,
		dbRow.NotificationPhoneNumber,
		dbRow.TwilioPhoneNumber,
		dbRow.CreatedAt,
		dbRow.UpdatedAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return errors.Wrap(err, "failed to create business")
	}
	return nil
}

func scanBusiness(row pgx.Row) (*business.Business, error) {
	var dbRow models.Business
	if err := row.Scan(
		&dbRow.ID,
		&dbRow.Name,
		&dbRow.Email,
		&dbRow.NotificationPhoneNumber,
		&dbRow.TwilioPhoneNumber,
		&dbRow.CreatedAt,
		&dbRow.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, business.ErrNotFound
		}
		return nil, err
	}
	return toDomainBusiness(&dbRow), nil
}
