package app

import (
	"context"
	"fmt"
	"time"

	"product-catalog/config"
	"product-catalog/controllers"
	"product-catalog/libs"
	"product-catalog/middleware"
	"product-catalog/repositories"
	"product-catalog/routes"
	"product-catalog/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Application owns every long-lived client. It is built once per process
// and handed to the HTTP layer.
type Application struct {
	cfg *config.Config

	mongoClient *mongo.Client
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	productService *services.ProductService
	authService    *services.AuthService
	router         *gin.Engine
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

// Init connects the configured store and cache and builds the router.
func (a *Application) Init() error {
	store, err := a.openStore()
	if err != nil {
		return err
	}

	var cache repositories.ListingCache = repositories.NoopListingCache{}
	if a.redisClient = config.ConnectRedis(a.cfg); a.redisClient != nil {
		cache = repositories.NewRedisListingCache(a.redisClient, a.cfg.ListCacheTTL)
	}

	var opts []services.ProductServiceOption
	if a.cfg.MirrorImages {
		mirror, err := libs.NewCloudinaryMirror(a.cfg)
		if err != nil {
			zap.S().Warnf("Image mirroring disabled: %v", err)
		} else {
			opts = append(opts, services.WithImageMirror(mirror))
		}
	}
	if notifier, err := libs.NewEmailNotifier(a.cfg); err == nil {
		opts = append(opts, services.WithNotifier(notifier))
	} else {
		zap.S().Infof("Product notifications disabled: %v", err)
	}

	a.productService = services.NewProductService(store, cache, opts...)
	a.authService = services.NewAuthService(a.cfg.AdminEmail, a.cfg.AdminPasswordHash, a.cfg.JWTSecret, a.cfg.JWTExpiry)
	if a.cfg.AdminPasswordHash == "" {
		zap.S().Warn("ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}

	a.router = NewRouter(a.cfg, a.productService, a.authService)
	return nil
}

// NewRouter assembles the gin engine around already constructed services.
func NewRouter(cfg *config.Config, productService *services.ProductService, authService *services.AuthService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	routes.SetupRoutes(router, routes.Controllers{
		Product: controllers.NewProductController(productService),
		Auth:    controllers.NewAuthController(authService),
	}, cfg.JWTSecret)
	return router
}

func (a *Application) openStore() (repositories.ProductStore, error) {
	switch a.cfg.StoreDriver {
	case StoreMongo:
		client, err := config.ConnectMongo(a.cfg)
		if err != nil {
			return nil, err
		}
		a.mongoClient = client

		repo := repositories.NewMongoProductRepository(client.Database(a.cfg.MongoDB))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	case StorePostgres:
		pool, err := config.ConnectDB(a.cfg)
		if err != nil {
			return nil, err
		}
		a.pgPool = pool
		return repositories.NewPostgresProductRepository(pool), nil

	case StoreMemory:
		zap.S().Warn("Using in-memory product store, data will not survive a restart")
		return repositories.NewMemoryProductRepository(), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", a.cfg.StoreDriver)
	}
}

// Close waits for pending notifications, then releases every client.
func (a *Application) Close() {
	if a.productService != nil {
		a.productService.Wait()
	}
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
	if a.pgPool != nil {
		a.pgPool.Close()
		zap.S().Info("Database connection closed")
	}
	config.DisconnectMongo(a.mongoClient)
}
