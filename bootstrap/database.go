package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/lakbay-travel/lakbay-backend/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbHost := env.DBHost
	dbPort := env.DBPort
	dbUser := env.DBUser
	dbPass := env.DBPass

	mongodbURI := fmt.Sprintf("mongodb://%s:%s@%s:%s", dbUser, dbPass, dbHost, dbPort)
	if dbUser == "" || dbPass == "" {
		mongodbURI = fmt.Sprintf("mongodb://%s:%s", dbHost, dbPort)
	}

	client, err := mongo.NewClient(mongodbURI)
	if err != nil {
		panic(fmt.Sprintf("MongoDB客户端创建失败: %v", err))
	}

	if err := client.Connect(ctx); err != nil {
		panic(fmt.Sprintf("MongoDB连接失败: %v", err))
	}

	if err := client.Ping(ctx); err != nil {
		panic(fmt.Sprintf("MongoDB无法访问: %v", err))
	}

	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.TODO()); err != nil {
		panic(fmt.Sprintf("MongoDB断开连接失败: %v", err))
	}
	fmt.Println("MongoDB连接已关闭")
}
