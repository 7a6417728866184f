package persistence

import (
	"database/sql"

	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/calllog"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/client"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/knowledge"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/lead"
	"github.com/ringdesk/ringdesk/modules/crm/domain/entities/leadquestion"
	"github.com/ringdesk/ringdesk/modules/crm/infrastructure/persistence/models"
)

func toDomainClient(row *models.Client) *client.Client {
	return &client.Client{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Name:      row.Name,
		Email:     row.Email.String,
		Phone:     row.Phone.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainProject(row *models.Project) *client.Project {
	return &client.Project{
		ID:        row.ID,
		TenantID:  row.TenantID,
		ClientID:  row.ClientID,
		Name:      row.Name,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

func toDomainLead(row *models.Lead) *lead.Lead {
	return &lead.Lead{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Name:      row.Name,
		Phone:     row.Phone.String,
		Status:    lead.Status(row.Status),
		Priority:  lead.Priority(row.Priority),
		Notes:     row.Notes.String,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainCallLog(row *models.CallLog) *calllog.CallLog {
	return &calllog.CallLog{
		ID:        row.ID,
		TenantID:  row.TenantID,
		CallSid:   row.CallSid,
		From:      row.FromNumber,
		To:        row.ToNumber,
		Status:    row.Status,
		Direction: row.Direction,
		CreatedAt: row.CreatedAt,
	}
}

func toDomainQuestion(row *models.LeadCaptureQuestion) *leadquestion.Question {
	return &leadquestion.Question{
		ID:         row.ID,
		TenantID:   row.TenantID,
		Question:   row.Question,
		OrderIndex: row.OrderIndex,
		Required:   row.Required,
		Choices:    row.Choices,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func toDomainKnowledgeEntry(row *models.KnowledgeEntry) *knowledge.Entry {
	return &knowledge.Entry{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Title:     row.Title.String,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
