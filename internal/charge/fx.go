package charge

import (
	"github.com/miradorhq/mirador/internal/charge/repository"
	"github.com/miradorhq/mirador/internal/charge/service"
	"go.uber.org/fx"
)

var Module = fx.Module("charge.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
