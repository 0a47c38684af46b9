package router

import (
	"civistash/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitSettingRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	// Strict permission routing group
	strictAuthRouter := r.Group("/settings").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.GET("", deps.SettingHandler.ListSettings)
		strictAuthRouter.PUT("", deps.SettingHandler.UpdateSetting)
	}
}
