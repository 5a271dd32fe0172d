package server

import (
	"github.com/gin-gonic/gin"

	handler "github.com/fsi-tue/rri/services/articles/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(system handler.ArticleSystemInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	articleHandler := handler.NewArticleHandler(system)

	articles := router.Group("/articles")
	{
		articles.POST("", articleHandler.CreateArticleHandler)
		articles.GET("", articleHandler.ListArticlesHandler)
		articles.GET("/:article_id", articleHandler.GetArticleHandler)
		articles.PATCH("/:article_id", articleHandler.PatchArticleHandler)
		articles.DELETE("/:article_id", articleHandler.DeleteArticleHandler)
		articles.PUT("/:article_id/status", articleHandler.UpdateStatusHandler)
		articles.POST("/:article_id/bids", articleHandler.PlaceBidHandler)
		articles.GET("/:article_id/highest", articleHandler.GetHighestBidHandler)
		articles.POST("/:article_id/report", articleHandler.ReportOutdatedHandler)
	}

	return router
}
