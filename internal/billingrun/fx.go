package billingrun

import (
	"github.com/miradorhq/mirador/internal/billingrun/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billingrun.service",
	fx.Provide(service.New),
)
