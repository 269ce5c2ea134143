package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/dto"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/handler"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/middleware"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

type RouterConfig struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	LandHandler       *handler.LandHandler
	SeedHandler       *handler.SeedHandler
	FertilizerHandler *handler.FertilizerHandler
	PricingHandler    *handler.PricingHandler
	OrderHandler      *handler.OrderHandler
	SystemHandler     *handler.SystemHandler

	Tokens      domain.JwtTokenRepository
	Revocations domain.RevocationRepository
	RateLimiter *middleware.RedisRateLimiter
	Logger      domain.LoggingRepository
	Recorder    domain.ErrorRecorder

	MaxAllowedSize int
}

func SetupRoutes(config RouterConfig) *gin.Engine {

	g := gin.New()
	g.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"https://*", "http://*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.AddRequestID(),
		middleware.PanicRecoveryMiddleware(config.Logger),
		middleware.RateLimiterMiddleware(config.RateLimiter, config.Logger),
		middleware.LoggingRequestMiddleware(config.Logger),
	)

	g.Handle("GET", "/home", config.SystemHandler.HomePageHandler)
	g.Handle("GET", "/health", config.SystemHandler.HealthHandler)

	api := g.Group("/api")

	// open routes
	auth := api.Group("/auth")
	{
		auth.Handle("POST", "/login", middleware.CheckContentType(), middleware.CheckContentBody[dto.LoginRequest](config.MaxAllowedSize), config.AuthHandler.LoginHandler)
	}
	api.Handle("POST", "/user/create", middleware.CheckContentType(), middleware.CheckContentBody[dto.RegisterUserRequest](config.MaxAllowedSize), config.UserHandler.CreateUserHandler)

	// everything below requires a live, unrevoked token
	protected := api.Group("")
	protected.Use(middleware.Authenticate(config.Tokens, config.Revocations, config.Logger, config.Recorder))
	{
		protected.Handle("POST", "/auth/logout", config.AuthHandler.LogoutHandler)
		protected.Handle("POST", "/auth/token/refresh", middleware.CheckContentType(), middleware.CheckContentBody[dto.RefreshRequest](config.MaxAllowedSize), config.AuthHandler.RefreshHandler)

		user := protected.Group("/user")
		{
			user.Handle("GET", "/users", config.UserHandler.ListFarmersHandler)
			user.Handle("GET", "/user", config.UserHandler.GetUserHandler)
			user.Handle("POST", "/update", middleware.CheckContentType(), middleware.CheckContentBody[dto.UpdateUserRequest](config.MaxAllowedSize), config.UserHandler.UpdateUserHandler)
		}

		land := protected.Group("/land")
		{
			land.Handle("POST", "/create", middleware.CheckContentType(), middleware.CheckContentBody[dto.CreateLandRequest](config.MaxAllowedSize), config.LandHandler.CreateLandHandler)
			land.Handle("GET", "/lands", config.LandHandler.ListLandsHandler)
			land.Handle("GET", "/land", config.LandHandler.GetLandHandler)
			land.Handle("PUT", "/update", middleware.CheckContentType(), middleware.CheckContentBody[dto.UpdateLandRequest](config.MaxAllowedSize), config.LandHandler.UpdateLandHandler)
			land.Handle("GET", "/get-land", config.LandHandler.GetAllLandsHandler)
			land.Handle("GET", "/farmer-land", config.LandHandler.ListFarmerLandsHandler)
		}

		seed := protected.Group("/seed")
		{
			seed.Handle("POST", "/create", middleware.CheckContentType(), middleware.CheckContentBody[dto.CreateSeedRequest](config.MaxAllowedSize), config.SeedHandler.CreateSeedHandler)
			seed.Handle("GET", "/seeds", config.SeedHandler.ListSeedsHandler)
			seed.Handle("GET", "/seed", config.SeedHandler.GetSeedHandler)
			seed.Handle("PUT", "/update", middleware.CheckContentType(), middleware.CheckContentBody[dto.UpdateSeedRequest](config.MaxAllowedSize), config.SeedHandler.UpdateSeedHandler)
			seed.Handle("GET", "/get-seeds", config.SeedHandler.GetAllSeedsHandler)
			seed.Handle("DELETE", "/delete", config.SeedHandler.DeleteSeedHandler)
		}

		fertilizer := protected.Group("/fertilizer")
		{
			fertilizer.Handle("POST", "/create", middleware.CheckContentType(), middleware.CheckContentBody[dto.CreateFertilizerRequest](config.MaxAllowedSize), config.FertilizerHandler.CreateFertilizerHandler)
			fertilizer.Handle("GET", "/fertilizers", config.FertilizerHandler.ListFertilizersHandler)
			fertilizer.Handle("GET", "/fertilizer", config.FertilizerHandler.GetFertilizerHandler)
			fertilizer.Handle("PUT", "/update", middleware.CheckContentType(), middleware.CheckContentBody[dto.UpdateFertilizerRequest](config.MaxAllowedSize), config.FertilizerHandler.UpdateFertilizerHandler)
			fertilizer.Handle("GET", "/get-fertilizer", config.FertilizerHandler.GetAllFertilizersHandler)
			fertilizer.Handle("DELETE", "/delete", config.FertilizerHandler.DeleteFertilizerHandler)
		}

		pricing := protected.Group("/pricing")
		{
			pricing.Handle("POST", "/create", middleware.CheckContentType(), middleware.CheckContentBody[dto.CreatePricingRequest](config.MaxAllowedSize), config.PricingHandler.CreatePricingHandler)
			pricing.Handle("GET", "/pricings", config.PricingHandler.ListPricingsHandler)
			pricing.Handle("GET", "/pricing", config.PricingHandler.GetPricingHandler)
			pricing.Handle("PUT", "/update", middleware.CheckContentType(), middleware.CheckContentBody[dto.UpdatePricingRequest](config.MaxAllowedSize), config.PricingHandler.UpdatePricingHandler)
			pricing.Handle("GET", "/get-pricing", config.PricingHandler.GetAllPricingsHandler)
			pricing.Handle("GET", "/product-price", config.PricingHandler.ProductPriceHandler)
		}

		order := protected.Group("/order")
		{
			order.Handle("POST", "/create", middleware.CheckContentType(), middleware.CheckContentBody[dto.CreateOrderRequest](config.MaxAllowedSize), config.OrderHandler.CreateOrderHandler)
			order.Handle("GET", "/orders", config.OrderHandler.ListOrdersHandler)
			order.Handle("GET", "/order", config.OrderHandler.GetOrderHandler)
			order.Handle("PUT", "/update", middleware.CheckContentType(), middleware.CheckContentBody[dto.UpdateOrderRequest](config.MaxAllowedSize), config.OrderHandler.UpdateOrderHandler)
		}
	}

	return g
}
