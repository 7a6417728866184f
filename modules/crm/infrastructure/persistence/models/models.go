package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Email     sql.NullString
	Phone     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Project struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	ClientID  uuid.UUID
	Name      string
	Status    string
	CreatedAt time.Time
}

type Lead struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Phone     sql.NullString
	Status    string
	Priority  string
	Notes     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CallLog struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	CallSid    string
	FromNumber string
	ToNumber   string
	Status     string
	Direction  string
	CreatedAt  time.Time
}

type LeadCaptureQuestion struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Question   string
	OrderIndex int
	Required   bool
	Choices    []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type KnowledgeEntry struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Title     sql.NullString
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
