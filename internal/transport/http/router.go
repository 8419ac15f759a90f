package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BaseMax/travel-planner-graphql/internal/health"
	"github.com/BaseMax/travel-planner-graphql/internal/transport/http/handler"
	"github.com/BaseMax/travel-planner-graphql/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, graphqlHandler *handler.GraphQLHandler, checker *health.Checker) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.POST("/graphql", graphqlHandler.Serve)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, checker.Liveness(c.Request.Context()))
	})

	return r
}
