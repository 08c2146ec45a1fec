package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"barrio/cmd/fx/accountfx"
	"barrio/cmd/fx/activityfx"
	"barrio/cmd/fx/businessfx"
	"barrio/cmd/fx/controllersfx"
	"barrio/cmd/fx/corefx"
	"barrio/cmd/fx/dbfx"
	"barrio/cmd/fx/eventfx"
	"barrio/cmd/fx/filefx"
	"barrio/cmd/fx/jobfx"
	"barrio/cmd/fx/mailfx"
	"barrio/cmd/fx/storagefx"
	"barrio/cmd/fx/tagfx"
	"barrio/cmd/fx/ticketfx"
	"barrio/internal/api/controllers"
	"barrio/internal/infra"
	"barrio/internal/repositories"
	"barrio/pkg/middleware"
	"barrio/pkg/utils"
)

func main() {
	app := fx.New(
		corefx.Module,
		dbfx.Module,
		storagefx.Module,
		mailfx.Module,
		accountfx.Module,
		eventfx.Module,
		businessfx.Module,
		activityfx.Module,
		ticketfx.Module,
		tagfx.Module,
		filefx.Module,
		controllersfx.Module,
		jobfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	tokens *utils.TokenManager,
	accountRepo repositories.AccountRepository,
	accountController *controllers.AccountController,
	eventController *controllers.EventController,
	businessController *controllers.BusinessController,
	activityController *controllers.ActivityController,
	ticketController *controllers.TicketController,
	tagController *controllers.TagController,
	fileController *controllers.FileController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	v1 := r.Group("/api/v1")

	accounts := v1.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/logout", accountController.Logout)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.POST("/validate-reset-token", accountController.ValidateResetToken)

	public := v1.Group("/public")
	public.GET("/events", eventController.ListPublic)
	public.GET("/businesses", businessController.ListPublic)

	private := v1.Group("")
	private.Use(middleware.AuthMiddleware(tokens, accountRepo))

	private.GET("/accounts/me", accountController.Me)
	private.GET("/accounts/:id", accountController.Get)
	private.PUT("/accounts/:id", accountController.Update)
	private.DELETE("/accounts/:id", accountController.Delete)

	admin := private.Group("")
	admin.Use(middleware.AdminMiddleware())
	admin.GET("/accounts", accountController.List)

	private.POST("/events", eventController.Create)
	private.GET("/events", eventController.ListOwn)
	private.GET("/events/:id", eventController.Get)
	private.PUT("/events/:id", eventController.Update)
	private.DELETE("/events/:id", eventController.Delete)

	private.POST("/businesses", businessController.Create)
	private.GET("/businesses", businessController.ListOwn)
	private.GET("/businesses/:id", businessController.Get)
	private.PUT("/businesses/:id", businessController.Update)
	private.DELETE("/businesses/:id", businessController.Delete)

	private.POST("/activities", activityController.Create)
	private.GET("/activities", activityController.List)
	private.GET("/activities/:id", activityController.Get)
	private.PUT("/activities/:id", activityController.Update)
	private.DELETE("/activities/:id", activityController.Delete)

	private.POST("/tickets", ticketController.Create)
	private.GET("/tickets", ticketController.List)
	private.GET("/tickets/:id", ticketController.Get)
	private.PUT("/tickets/:id", ticketController.Update)
	private.DELETE("/tickets/:id", ticketController.Delete)

	private.POST("/tags", tagController.Create)
	private.GET("/tags", tagController.List)
	private.GET("/tags/:id", tagController.Get)
	private.PUT("/tags/:id", tagController.Update)
	private.DELETE("/tags/:id", tagController.Delete)

	private.POST("/files", fileController.Create)
	private.GET("/files", fileController.List)
	private.GET("/files/presign-upload", fileController.PresignUpload)
	private.GET("/files/:id", fileController.Get)
	private.GET("/files/:id/presign-download", fileController.PresignDownload)
	private.PUT("/files/:id", fileController.Update)
	private.DELETE("/files/:id", fileController.Delete)

	return r
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
