package app

import (
	"log"
	"net/http"

	"github.com/Paldom/go-todo-service/internal/auth"
	"github.com/Paldom/go-todo-service/internal/config"
	"github.com/Paldom/go-todo-service/internal/handlers"
	"github.com/Paldom/go-todo-service/internal/repo"
	"github.com/Paldom/go-todo-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, logger *log.Logger) {
	r.GET("/", rootHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	healthHandler := handlers.NewHealthHandler(db)
	r.GET("/health/live", healthHandler.Live)
	r.GET("/health/ready", healthHandler.Ready)

	if !cfg.IsProduction() {
		registerSwaggerRoutes(r)
	}

	api := r.Group("/v1", auth.UserInfoMiddleware())
	api.GET("/userInfo", handlers.UserInfo)

	todoRepo := repo.NewPGTodoRepo(db)
	todoSvc := service.NewTodoService(todoRepo, logger)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	registerTodoRoutes(api, todoHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health/live",
			"api":     "/v1",
		})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func registerSwaggerRoutes(r *gin.Engine) {
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.GET("/todos", h.List)
	api.POST("/todos", h.Create)
	api.GET("/todos/:id", h.GetByID)
	api.PATCH("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
}
