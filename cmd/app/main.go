package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"yatra/cmd/fx/db_fx"
	"yatra/cmd/fx/llm_fx"
	"yatra/cmd/fx/travel_fx"
	"yatra/cmd/fx/wizard_fx"
	"yatra/internal/api/controllers"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		travel_fx.Module,
		wizard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(wizardController *controllers.WizardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, wizardController)

	return r
}

func RegisterRoutes(r *gin.Engine, wizardController *controllers.WizardController) {

	sessions := r.Group("/sessions")
	sessions.Use(middleware.JWTAuthMiddleware())

	sessions.POST("", wizardController.CreateSession)
	sessions.GET("/:sessionId", wizardController.GetSession)
	sessions.POST("/:sessionId/forward", wizardController.Forward)
	sessions.POST("/:sessionId/back", wizardController.Back)
	sessions.POST("/:sessionId/reset", wizardController.Reset)
	sessions.GET("/:sessionId/export", wizardController.Export)
}
