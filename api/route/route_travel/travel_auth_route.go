package route_travel

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakbay-travel/lakbay-backend/api/controller/controller_travel"
	"github.com/lakbay-travel/lakbay-backend/bootstrap"
	"github.com/lakbay-travel/lakbay-backend/domain"
	"github.com/lakbay-travel/lakbay-backend/mongo"
	"github.com/lakbay-travel/lakbay-backend/repository/repository_travel"
	"github.com/lakbay-travel/lakbay-backend/usecase/usecase_travel"
)

// NewAuthRouter 注册无需鉴权的注册/登录路由
func NewAuthRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	userRepo := repository_travel.NewUserRepository(db, domain.CollectionUser)
	preferencesRepo := repository_travel.NewPreferencesRepository(db, domain.CollectionPreferences)

	userUsecase := usecase_travel.NewUserUsecase(
		userRepo, preferencesRepo,
		timeout,
		env.AccessTokenSecret, env.AccessTokenExpiryHour,
	)

	userCtrl := controller_travel.NewUserController(userUsecase)

	authGroup := group.Group("/auth")
	{
		authGroup.POST("/signup", userCtrl.Signup)
		authGroup.POST("/login", userCtrl.Login)
	}
}

// NewPreferencesRouter 注册需要鉴权的偏好更新路由
func NewPreferencesRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	userRepo := repository_travel.NewUserRepository(db, domain.CollectionUser)
	preferencesRepo := repository_travel.NewPreferencesRepository(db, domain.CollectionPreferences)

	userUsecase := usecase_travel.NewUserUsecase(
		userRepo, preferencesRepo,
		timeout,
		env.AccessTokenSecret, env.AccessTokenExpiryHour,
	)

	userCtrl := controller_travel.NewUserController(userUsecase)

	group.POST("/auth/preferences", userCtrl.UpdatePreferences)
}
