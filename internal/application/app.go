package application

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	router "github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/handler"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/adapters/http/middleware"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/config"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/infrastructure/queue"
	mongorepo "github.com/rwagatenga/FarmerOrderingSystemBackend/internal/infrastructure/repository/mongo"
	redisrepo "github.com/rwagatenga/FarmerOrderingSystemBackend/internal/infrastructure/repository/redis"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/infrastructure/security"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/usecase"
	"github.com/rwagatenga/FarmerOrderingSystemBackend/pkg/logger"
)

const (
	auditWorkerCount = 2
	auditQueueSize   = 100
)

type App struct {
	Cfg *config.Config
}

func (a App) Run() {

	rootctx, rootcancel := context.WithCancel(context.Background())
	defer rootcancel()

	log := logger.NewLogger(a.Cfg.Log.FilePath)

	mongoClient, err := mongorepo.Connect(rootctx, a.Cfg.Mongo.URI)
	if err != nil {
		log.Error("mongodb connection failed", "reason", err.Error())
		panic(err)
	}
	defer func() {
		if err := mongorepo.Close(context.Background(), mongoClient); err != nil {
			log.Error("mongodb close failed", "reason", err.Error())
		}
	}()
	db := mongoClient.Database(a.Cfg.Mongo.Database)

	redisConn, err := redisrepo.ConnectToRedis(rootctx, a.Cfg.Redis.Addr, a.Cfg.Redis.Password, a.Cfg.Redis.DB)
	if err != nil {
		log.Error("redis connection failed", "reason", err.Error())
		panic(err)
	}
	defer redisConn.Close()

	hasher := security.NewHasher(a.Cfg.Security.BcryptCost)
	jwtAuth := security.NewJwtAuth(a.Cfg.Jwt.Secret, a.Cfg.Jwt.Issuer, a.Cfg.Jwt.ExpiresIn, a.Cfg.Jwt.RefreshExpiresIn)

	userRepo := mongorepo.NewUserRepo(db)
	landRepo := mongorepo.NewLandRepo(db)
	seedRepo := mongorepo.NewSeedRepo(db)
	fertilizerRepo := mongorepo.NewFertilizerRepo(db)
	pricingRepo := mongorepo.NewPricingRepo(db)
	orderRepo := mongorepo.NewOrderRepo(db)
	errorRepo := mongorepo.NewErrorAuditRepo(db)

	sessionStore := redisrepo.NewSessionStore(redisConn, jwtAuth)
	revocationStore := redisrepo.NewRevocationStore(redisConn)

	auditPool := queue.NewErrorAuditPool(rootctx, auditWorkerCount, auditQueueSize, errorRepo, log)
	auditPool.Start()

	authSvc := usecase.NewAuthService(userRepo, sessionStore, revocationStore, jwtAuth, hasher, log)
	userSvc := usecase.NewUserService(userRepo, hasher, a.Cfg.Security.PasswordMaxAge, log)
	landSvc := usecase.NewLandService(landRepo, userRepo, log)
	seedSvc := usecase.NewSeedService(seedRepo, log)
	fertilizerSvc := usecase.NewFertilizerService(fertilizerRepo, log)
	pricingSvc := usecase.NewPricingService(pricingRepo, log)
	orderSvc := usecase.NewOrderService(orderRepo, landRepo, seedRepo, fertilizerRepo, log)

	rateLimiter := middleware.NewRedisRateLimiter(
		redisConn,
		float64(a.Cfg.Security.RateLimitCapacity),
		1.0/a.Cfg.Security.RateLimitFillEvery.Seconds(),
		a.Cfg.Security.RateLimiterIdle,
	)

	routerCfg := router.RouterConfig{
		AuthHandler:       handler.NewAuthHandler(authSvc, log, auditPool),
		UserHandler:       handler.NewUserHandler(userSvc, log, auditPool),
		LandHandler:       handler.NewLandHandler(landSvc, log, auditPool),
		SeedHandler:       handler.NewSeedHandler(seedSvc, log, auditPool),
		FertilizerHandler: handler.NewFertilizerHandler(fertilizerSvc, log, auditPool),
		PricingHandler:    handler.NewPricingHandler(pricingSvc, log, auditPool),
		OrderHandler:      handler.NewOrderHandler(orderSvc, log, auditPool),
		SystemHandler:     handler.NewSystemHandler(),
		Tokens:            jwtAuth,
		Revocations:       revocationStore,
		RateLimiter:       rateLimiter,
		Logger:            log,
		Recorder:          auditPool,
		MaxAllowedSize:    a.Cfg.Server.MaxAllowedSize,
	}

	g := router.SetupRoutes(routerCfg)

	server := &http.Server{
		Addr:    a.Cfg.Server.Address(),
		Handler: g,
	}

	go func() {
		serverErr := server.ListenAndServe()
		if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			log.Error("failed to start the server", "reason", serverErr.Error())
		}
	}()
	log.Info("server started", "addr", server.Addr)

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	<-sigchan

	shutdownctx, shutdowncancel := context.WithTimeout(context.Background(), a.Cfg.Server.ShutdownTimeout)
	defer shutdowncancel()
	if err := server.Shutdown(shutdownctx); err != nil {
		log.Error("server closed with error", "reason", err.Error())
	}

	auditPool.Cancel()
	auditPool.Wait()

	log.Info("check number of goroutine", "number", runtime.NumGoroutine())
}
