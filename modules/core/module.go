package core

import (
	"github.com/ringdesk/ringdesk/modules/core/infrastructure/persistence"
	"github.com/ringdesk/ringdesk/modules/core/presentation/controllers"
	"github.com/ringdesk/ringdesk/modules/core/services"
	"github.com/ringdesk/ringdesk/pkg/application"
	"github.com/ringdesk/ringdesk/pkg/configuration"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	businessRepo := persistence.NewBusinessRepository()

	app.RegisterServices(
		services.NewBusinessService(businessRepo, app.EventPublisher()),
		services.NewHealthService(conf),
		services.NewTenantResolver(businessRepo, conf.DefaultBusinessID),
	)
	app.RegisterControllers(
		controllers.NewAuthController(app),
		controllers.NewBusinessController(app),
		controllers.NewHealthController(app),
	)
	return nil
}
