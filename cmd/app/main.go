package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kissan/cmd/fx/account_fx"
	"kissan/cmd/fx/advisor_fx"
	"kissan/cmd/fx/ai_fx"
	"kissan/cmd/fx/controllers_fx"
	"kissan/cmd/fx/crophealth_fx"
	"kissan/cmd/fx/db_fx"
	"kissan/cmd/fx/market_fx"
	"kissan/cmd/fx/plot_fx"
	"kissan/cmd/fx/profile_fx"
	"kissan/cmd/fx/scheme_fx"
	"kissan/cmd/fx/weather_fx"
	"kissan/internal/api/controllers"
	"kissan/internal/config"
	"kissan/internal/infra"
	"kissan/pkg/middleware"
	"kissan/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		plot_fx.Module,
		scheme_fx.Module,
		market_fx.Module,
		weather_fx.Module,
		advisor_fx.Module,
		crophealth_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	tokens *utils.JWTManager,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	plotController *controllers.PlotController,
	weatherController *controllers.WeatherController,
	marketController *controllers.MarketController,
	schemeController *controllers.SchemeController,
	advisorController *controllers.AdvisorController,
	cropHealthController *controllers.CropHealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CorsOrigins))

	RegisterRoutes(r, cfg, tokens,
		accountController, profileController, plotController,
		weatherController, marketController, schemeController,
		advisorController, cropHealthController)

	return r
}

func RegisterRoutes(r *gin.Engine, cfg config.Config, tokens *utils.JWTManager,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	plotController *controllers.PlotController,
	weatherController *controllers.WeatherController,
	marketController *controllers.MarketController,
	schemeController *controllers.SchemeController,
	advisorController *controllers.AdvisorController,
	cropHealthController *controllers.CropHealthController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/oauth/google", accountController.OAuthGoogle)

	api.GET("/session", middleware.OptionalJWTMiddleware(tokens), accountController.Session)

	profile := api.Group("/profile", middleware.JWTAuthMiddleware(tokens))
	profile.GET("", profileController.GetProfile)
	profile.PUT("", profileController.SaveProfile)

	plots := api.Group("/plots", middleware.JWTAuthMiddleware(tokens))
	plots.GET("", plotController.ListPlots)
	plots.POST("", plotController.CreatePlot)
	plots.PUT("/:id", plotController.UpdatePlot)
	plots.DELETE("/:id", plotController.DeletePlot)

	api.GET("/weather", weatherController.GetWeather)
	api.GET("/market", marketController.GetQuotes)
	api.GET("/schemes", schemeController.ListSchemes)

	aiGroup := api.Group("/ai")
	aiGroup.POST("/chat", advisorController.Chat)
	aiGroup.GET("/chat/history", advisorController.History)
	aiGroup.POST("/crop-health", cropHealthController.Analyze)

	api.POST("/assistant/command", advisorController.Command)

	registerSPAFallback(r, cfg.StaticDir)
}

// registerSPAFallback serves the built UI; unknown non-API paths get
// index.html so client-side routing works, unknown API paths stay JSON 404.
func registerSPAFallback(r *gin.Engine, staticDir string) {
	index := filepath.Join(staticDir, "index.html")

	if _, err := os.Stat(index); err == nil {
		r.Static("/assets", filepath.Join(staticDir, "assets"))
	} else {
		log.Printf("Static dir %s not found, SPA fallback disabled", staticDir)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			utils.RespondError(c, http.StatusNotFound, "Not found")
			return
		}
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.String(http.StatusNotFound, "not found")
	})
}
