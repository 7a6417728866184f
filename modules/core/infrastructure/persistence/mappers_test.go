package persistence

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ringdesk/ringdesk/modules/core/domain/entities/business"
	"github.com/ringdesk/ringdesk/modules/core/infrastructure/persistence/models"
)

func TestToDomainBusiness_NullableColumns(t *testing.T) {
	// Rows written outside the API (seeds, imports) may carry NULL email
	// and phone columns; the mapper must treat them as empty strings.
	row := &models.Business{
		ID:   uuid.New(),
		Name: "Acme",
	}
	b := toDomainBusiness(row)
	assert.Empty(t, b.Email)
	assert.Empty(t, b.NotificationPhoneNumber)
	assert.Empty(t, b.TwilioPhoneNumber)

	row.Email = sql.NullString{String: "ops@acme.test", Valid: true}
	assert.Equal(t, "ops@acme.test", toDomainBusiness(row).Email)
}

func TestToDBBusiness_EmptyStringsBecomeNull(t *testing.T) {
	b := &business.Business{ID: uuid.New(), Name: "Acme"}
	row := toDBBusiness(b)
	assert.False(t, row.Email.Valid)
	assert.False(t, row.NotificationPhoneNumber.Valid)
	assert.False(t, row.TwilioPhoneNumber.Valid)

	b.Email = "ops@acme.test"
	assert.Equal(t, sql.NullString{String: "ops@acme.test", Valid: true}, toDBBusiness(b).Email)
}
