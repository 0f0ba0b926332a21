package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/route"
	"github.com/lakbay-travel/lakbay-backend/bootstrap"
)

func main() {
	app := bootstrap.App()
	defer app.CloseDBConnection()

	env := app.Env
	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeoutSec) * time.Second

	engine := gin.Default()
	route.Setup(env, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		panic(err)
	}
}
