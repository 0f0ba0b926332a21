package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/middleware"
	"github.com/lakbay-travel/lakbay-backend/api/route/route_travel"
	"github.com/lakbay-travel/lakbay-backend/bootstrap"
	"github.com/lakbay-travel/lakbay-backend/mongo"
)

// Setup 组装全部路由：公开组只有注册/登录，其余都在JWT保护组里
func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, engine *gin.Engine) {
	publicRouter := engine.Group("")
	route_travel.NewAuthRouter(env, timeout, db, publicRouter)

	protectedRouter := engine.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	route_travel.NewPreferencesRouter(env, timeout, db, protectedRouter)
	route_travel.NewLocationRouter(timeout, db, protectedRouter)
	route_travel.NewRecommendRouter(env, timeout, db, protectedRouter)
}
