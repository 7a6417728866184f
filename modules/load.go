package modules

import (
	"github.com/ringdesk/ringdesk/modules/core"
	"github.com/ringdesk/ringdesk/modules/crm"
	"github.com/ringdesk/ringdesk/pkg/application"
)

// BuiltInModules is the default module set in load order. Core must come
// first so the tenant resolver exists before dependent controllers.
var BuiltInModules = []application.Module{
	core.NewModule(),
	crm.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range append(BuiltInModules, externalModules...) {
		if err := module.Register(app); err != nil {
			return err
		}
		app.Logger().WithField("module", module.Name()).Info("module loaded")
	}
	return nil
}
