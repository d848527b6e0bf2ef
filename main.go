package main

import (
	"fmt"
	"ghost-theme-storefront/internal/auth"
	"ghost-theme-storefront/internal/blog"
	"ghost-theme-storefront/internal/catalog"
	"ghost-theme-storefront/internal/config"
	"ghost-theme-storefront/internal/constants"
	"ghost-theme-storefront/internal/database"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/forms"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/pages"
	"ghost-theme-storefront/internal/render"
	"ghost-theme-storefront/internal/routes"
	"ghost-theme-storefront/internal/sitemap"
	"github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapio"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	c := config.InitConfig()

	logger := logging.InitLogging(c)

	controllerRegistry, err := injectDependencies(c, logger)
	if err != nil {
		logger.LogErrorf(logging.GetLogTypeInitialization(), "injecting dependencies failed: %s", err.Error())
		return
	}

	ginLogger := logging.InitGinLogger(c)

	gin.DefaultWriter = io.MultiWriter(&zapio.Writer{Log: ginLogger, Level: config.Config().Logging.Level})
	if config.Config().Logging.Level == zap.DebugLevel {
		logger.LogDebug(nil, "Enabling Gin debug (writes to access log)")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		ginzap.GinzapWithConfig(ginLogger, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        false,
			SkipPaths:  []string{"/status"},
		}),
		ginzap.RecoveryWithZap(ginLogger, true),
	)

	// Routes
	routes.InitRouter(r, controllerRegistry)

	SetupCloseHandler(logger)

	if len(config.Config().ListeningAddress) == 0 && len(config.Config().ListeningPort) == 0 {
		panic("No listening address/port provided")
	}

	logger.LogInfof(nil, "API running. Listening on %s:%s", config.Address(), config.Port())

	err = r.Run(config.Address() + ":" + config.Port())
	if err != nil {
		logger.LogErrorf(nil, "Listening on %s:%s failed: %s", config.Address(), config.Port(), err.Error())
		return
	}
}

func injectDependencies(config *config.Configuration, logger logging.Logger) (map[int]any, error) {
	db, err := database.InitDatabase(config, logger)
	if err != nil {
		logger.LogError(logging.GetLogTypeInitialization(), "error initializing database: ", err)
		return nil, err
	}

	env := environment.Environment(
		&database.GormRepository{DB: db},
		logger,
	)

	catalogController := &catalog.Controller{
		Env: env,
	}

	// the Collator is used for lexicographic order with locale-aware sorting,
	// instead of Go's default pure Unicode code point ordering
	c := collate.New(language.English)
	blogController := &blog.Controller{
		Env:                    env,
		AuthorDirectoryService: blog.AuthorDirectoryService{Env: env, Collator: c},
		Renderer:               render.New(),
	}

	pagesController := &pages.Controller{
		Env: env,
	}

	formsController := &forms.Controller{
		Env: env,
	}

	authController := &auth.Controller{
		Env:         env,
		AuthService: &auth.AuthService{Env: env},
	}

	sitemapController := &sitemap.Controller{
		Env:     env,
		BaseURL: config.Site.BaseURL,
	}

	controllerRegistry := make(map[int]any)
	controllerRegistry[constants.Catalog] = catalogController
	controllerRegistry[constants.Blog] = blogController
	controllerRegistry[constants.Pages] = pagesController
	controllerRegistry[constants.Forms] = formsController
	controllerRegistry[constants.Auth] = authController
	controllerRegistry[constants.Sitemap] = sitemapController

	return controllerRegistry, nil
}

func SetupCloseHandler(logger logging.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-c
		fmt.Println()
		logger.LogWarnf(nil, "Cleaning up...")
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}()
}
