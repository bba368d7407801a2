package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/smallbiznis/qrbill/internal/audit"
	"github.com/smallbiznis/qrbill/internal/bill"
	"github.com/smallbiznis/qrbill/internal/clock"
	"github.com/smallbiznis/qrbill/internal/config"
	"github.com/smallbiznis/qrbill/internal/db"
	"github.com/smallbiznis/qrbill/internal/observability/logger"
	"github.com/smallbiznis/qrbill/internal/scheduler"
	"github.com/smallbiznis/qrbill/internal/server"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		audit.Module,
		bill.Module,
		scheduler.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server, engine *gin.Engine) {
			s.RegisterRoutes(engine)
		}),
		fx.Invoke(server.RunHTTP),
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
