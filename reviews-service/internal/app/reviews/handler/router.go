package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reviewsapi/pkg/logger"
	"reviewsapi/pkg/metrics"
)

func SetupRoutes(reviewHandler *ReviewHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware(serviceName))

	// Отзывы отправляются со страниц на любых доменах
	router.Use(cors.Default())

	router.GET("/", reviewHandler.Welcome)
	router.GET("/health", reviewHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/get-reviews", reviewHandler.GetReviews)
	router.POST("/submit-review", reviewHandler.SubmitReview)

	return router
}
