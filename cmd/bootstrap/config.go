package bootstrap

import (
	"parkdesk/internal/pkg/config"
	"parkdesk/internal/pkg/policy"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewInventoryPolicy,
	),
)

func NewInventoryPolicy(cfg config.Config) (policy.InventoryPolicy, error) {
	return policy.Load(cfg.Policy.File)
}
