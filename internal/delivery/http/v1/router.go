package v1

import (
	"net/http"

	"local-jobs-backend/config"
	"local-jobs-backend/internal/delivery/http/middleware"
	"local-jobs-backend/internal/delivery/http/response"
	"local-jobs-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	JobUC    domain.JobUsecase
	SeekerUC domain.JobSeekerUsecase
	Config   *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Local Jobs Backend is running. Use /jobs endpoints.", nil)
	})

	NewJobHandler(&r.RouterGroup, deps.JobUC)
	NewSeekerHandler(&r.RouterGroup, deps.SeekerUC)
	NewAuthHandler(&r.RouterGroup)

	return r
}
