package services

import "github.com/google/uuid"

type NotificationPhoneUpdatedEvent struct {
	BusinessID  uuid.UUID
	PhoneNumber string
}
