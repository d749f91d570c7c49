package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/kv"
	"github.com/yungbote/storefront-backend/internal/pkg/logger"
)

// App is the explicitly constructed aggregate owning the cart and wishlist
// state for this process. Everything is wired here once at startup; there is
// no package-level singleton to reach for.
type App struct {
	Log      *logger.Logger
	Cfg      Config
	Store    kv.Store
	Router   *gin.Engine
	Repos    Repos
	Services Services
	cleanup  func()
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	clientset, cleanup, err := wireClients(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(clientset.Store, log)
	serviceset := wireServices(log, reposet)
	handlerset := wireHandlers(log, serviceset, clientset)
	middlewareset := wireMiddleware(log)
	router := wireRouter(cfg, handlerset, middlewareset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Store:    clientset.Store,
		Router:   router,
		Repos:    reposet,
		Services: serviceset,
		cleanup:  cleanup,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cleanup != nil {
		a.cleanup()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
