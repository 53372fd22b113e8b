package staff

import (
	"github.com/miradorhq/mirador/internal/staff/repository"
	"github.com/miradorhq/mirador/internal/staff/service"
	"go.uber.org/fx"
)

var Module = fx.Module("staff.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
