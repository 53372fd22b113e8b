package owner

import (
	"github.com/miradorhq/mirador/internal/owner/repository"
	"github.com/miradorhq/mirador/internal/owner/service"
	"go.uber.org/fx"
)

var Module = fx.Module("owner.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
