package department

import (
	"github.com/miradorhq/mirador/internal/department/repository"
	"github.com/miradorhq/mirador/internal/department/service"
	"go.uber.org/fx"
)

var Module = fx.Module("department.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
