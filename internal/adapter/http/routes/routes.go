package routes

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	_ "pix_checkout/docs"
	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/adapter/http/middleware"
	"pix_checkout/internal/adapter/http/views"
	"pix_checkout/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRouter wires every dependency from cfg and registers all routes.
func NewRouter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, logger, !cfg.IsProduction())
	router.SetHTMLTemplate(views.Templates())
	router.StaticFS("/static", views.Static())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET(PathHealth, deps.health.Health)
	addPaymentRoutes(router.Group(PathAPI), deps.pix)
	addPageRoutes(router, deps.checkoutPage, deps.paymentPage)
	router.NoRoute(notFound)

	return router, nil
}

// Run serves until ctx is cancelled, then drains connections. Request contexts
// derive from ctx so open timer streams end on shutdown.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	router, err := NewRouter(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, debug bool) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger, debug))
	router.Use(middleware.CORS())
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, response.NotFoundResponse{
		Error:  "Rota não encontrada",
		Path:   c.Request.URL.Path,
		Method: c.Request.Method,
	})
}

