package services

import (
	"github.com/google/uuid"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/knowledge"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/leadquestion"
)

type ClientCreatedEvent struct {
	Result client.Client
}

type ClientDeletedEvent struct {
	ID uuid.UUID
}

type LeadCreatedEvent struct {
	Result lead.Lead
}

type LeadUpdatedEvent struct {
	Result lead.Lead
}

type LeadDeletedEvent struct {
	ID uuid.UUID
}

type LeadQuestionCreatedEvent struct {
	Result leadquestion.Question
}

type LeadQuestionUpdatedEvent struct {
	Result leadquestion.Question
}

type LeadQuestionDeletedEvent struct {
	ID uuid.UUID
}

type KnowledgeEntryCreatedEvent struct {
	Result knowledge.Entry
}

type KnowledgeEntryUpdatedEvent struct {
	Result knowledge.Entry
}

type KnowledgeEntryDeletedEvent struct {
	ID uuid.UUID
}
