package modules

import (
	"github.com/iota-uz/billing-portal/pkg/application"
)

// Load registers modules in order. The portal module needs its API client,
// so callers build it and pass it here.
func Load(app application.Application, modules ...application.Module) error {
	for _, module := range modules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
