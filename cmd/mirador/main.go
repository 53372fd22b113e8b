package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/miradorhq/mirador/internal/clock"
	"github.com/miradorhq/mirador/internal/config"
	"github.com/miradorhq/mirador/internal/migration"
	"github.com/miradorhq/mirador/internal/observability"
	"github.com/miradorhq/mirador/internal/server"
	"github.com/miradorhq/mirador/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// HTTP surface; pulls in every domain module.
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
