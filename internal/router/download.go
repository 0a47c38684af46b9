package router

import (
	"civistash/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitDownloadRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	// Strict permission routing group
	strictAuthRouter := r.Group("/downloads").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.POST("", deps.DownloadHandler.StartDownload)
		strictAuthRouter.GET("/status", deps.DownloadHandler.GetTaskStatus)
		strictAuthRouter.POST("/pause", deps.DownloadHandler.PauseTask)
		strictAuthRouter.POST("/resume", deps.DownloadHandler.ResumeTask)
		strictAuthRouter.POST("/delete", deps.DownloadHandler.DeleteTask)
		strictAuthRouter.POST("/finish", deps.DownloadHandler.FinishTask)
	}

	// WebSocket 握手无法携带 Authorization 头，走 NoStrictAuth 的 query token
	wsRouter := r.Group("/downloads").Use(middleware.NoStrictAuth(deps.JWT, deps.Logger))
	{
		wsRouter.GET("/progress", deps.DownloadHandler.TaskProgress)
	}
}
