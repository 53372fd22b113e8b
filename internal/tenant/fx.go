package tenant

import (
	"github.com/miradorhq/mirador/internal/tenant/repository"
	"github.com/miradorhq/mirador/internal/tenant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
