package bootstrap

import (
	"github.com/lakbay-travel/lakbay-backend/mongo"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)

	db := app.Mongo.Database(app.Env.DBName)
	mongo.CreateIndexes(db)

	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
