package delinquency

import (
	"github.com/miradorhq/mirador/internal/delinquency/repository"
	"github.com/miradorhq/mirador/internal/delinquency/service"
	"go.uber.org/fx"
)

var Module = fx.Module("delinquency.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
