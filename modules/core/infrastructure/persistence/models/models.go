package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Business struct {
	ID                      uuid.UUID
	Name                    string
	Email                   sql.NullString
	NotificationPhoneNumber sql.NullString
	TwilioPhoneNumber       sql.NullString
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
