package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophtodo-server/internal/api/http/handler"
	"github.com/dtroode/gophtodo-server/internal/api/http/middleware"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
)

// Router wires HTTP handlers and middleware for the to-do API.
type Router struct {
	authService    handler.AuthService
	taskService    handler.TaskService
	tokenService   middleware.TokenService
	storage        model.Pinger
	contextManager model.ContextManager
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	taskService handler.TaskService,
	tokenService middleware.TokenService,
	storage model.Pinger,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		tokenService:   tokenService,
		storage:        storage,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the engine with request logging, CORS and bearer
// authentication on every task and account route.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	e := gin.New()
	e.Use(gin.Recovery(), logging.Handle, cors.New(r.corsConfig()))

	r.registerHealthRoutes(e)
	r.registerAuthRoutes(e, authenticate)
	r.registerTaskRoutes(e, authenticate)

	return e
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(r.allowedOrigins) == 0 || (len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = r.allowedOrigins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}

func (r *Router) registerHealthRoutes(e *gin.Engine) {
	healthHandler := handler.NewHealth(r.storage, r.logger)
	e.GET("/health", healthHandler.Check)
}

func (r *Router) registerAuthRoutes(e *gin.Engine, authenticate *middleware.Authenticate) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.PUT("/user", authenticate.Handle, authHandler.UpdateAccount)
}

func (r *Router) registerTaskRoutes(e *gin.Engine, authenticate *middleware.Authenticate) {
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)

	todo := e.Group("/todo", authenticate.Handle)
	todo.POST("", taskHandler.CreateTask)
	todo.GET("", taskHandler.GetTasks)
	todo.PUT("/:id", taskHandler.UpdateTask)
	todo.DELETE("/:id", taskHandler.DeleteTask)
}
