package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adrianocesar/processos-backend-go/internal/handler"
	"github.com/adrianocesar/processos-backend-go/internal/middleware"
)

// SetupRouter builds the HTTP router for the dashboard API.
func SetupRouter(dashboard *handler.DashboardHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS: the SPA is served from a different origin.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Processos Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		dash := api.Group("/dashboard")
		{
			dash.GET("/meta", dashboard.GetMeta)
			dash.GET("/summary", dashboard.GetSummary)
			dash.GET("/yearly", dashboard.GetYearly)
			dash.GET("/subjects/top", dashboard.GetTopSubjects)
			dash.GET("/subjects/by-class", dashboard.GetSubjectsByClass)
			dash.GET("/subjects/detail", dashboard.GetSubjectDetail)
			dash.GET("/classes/top", dashboard.GetTopClasses)
			dash.GET("/classes/by-subject", dashboard.GetClassesBySubject)
			dash.GET("/records", dashboard.GetRecords)
			dash.GET("/map", dashboard.GetMap)
		}
	}

	return r
}
