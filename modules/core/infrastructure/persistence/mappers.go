package persistence

import (
	"database/sql"

	"github.com/ringdesk/ringdesk/modules/core/domain/entities/business"
	"github.com/ringdesk/ringdesk/modules/core/infrastructure/persistence/models"
)

func toDomainBusiness(row *models.Business) *business.Business {
	return &business.Business{
		ID:                      row.ID,
		Name:                    row.Name,
		Email:                   row.Email.String,
		NotificationPhoneNumber: row.NotificationPhoneNumber.String,
		TwilioPhoneNumber:       row.TwilioPhoneNumber.String,
		CreatedAt:               row.CreatedAt,
		UpdatedAt:               row.UpdatedAt,
	}
}

func toDBBusiness(b *business.Business) *models.Business {
	return &models.Business{
		ID:                      b.ID,
		Name:                    b.Name,
		Email:                   nullString(b.Email),
		NotificationPhoneNumber: nullString(b.NotificationPhoneNumber),
		TwilioPhoneNumber:       nullString(b.TwilioPhoneNumber),
		CreatedAt:               b.CreatedAt,
		UpdatedAt:               b.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
