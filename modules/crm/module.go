package crm

import (
	"github.com/ringdesk/ringdesk/modules/crm/infrastructure/persistence"
	"github.com/ringdesk/ringdesk/modules/crm/presentation/controllers"
	"github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/application"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "crm"
}

func (m *Module) Register(app application.Application) error {
	clientRepo := persistence.NewClientRepository()
	leadRepo := persistence.NewLeadRepository()
	callLogRepo := persistence.NewCallLogRepository()
	questionRepo := persistence.NewLeadQuestionRepository()
	knowledgeRepo := persistence.NewKnowledgeRepository()

	app.RegisterServices(
		services.NewClientService(clientRepo, leadRepo, app.EventPublisher()),
		services.NewLeadService(leadRepo, app.EventPublisher()),
		services.NewCallLogService(callLogRepo),
		services.NewLeadQuestionService(questionRepo, app.EventPublisher()),
		services.NewKnowledgeService(knowledgeRepo, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewClientsController(app),
		controllers.NewLeadsController(app),
		controllers.NewLeadQuestionsController(app),
		controllers.NewKnowledgeBaseController(app),
		controllers.NewAnalyticsController(app),
	)
	return nil
}
