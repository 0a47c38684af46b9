package router

import (
	"civistash/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitModelRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	// Strict permission routing group
	strictAuthRouter := r.Group("/").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.GET("/models", deps.ModelHandler.ListModels)
		strictAuthRouter.GET("/models/:id", deps.ModelHandler.GetModel)
		strictAuthRouter.GET("/library", deps.ModelHandler.ListLibrary)
	}
}
