package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/adyen/storefront-ui/internal/browser"
	internalcli "github.com/adyen/storefront-ui/internal/cli"
	"github.com/adyen/storefront-ui/internal/config"
	"github.com/adyen/storefront-ui/internal/handlers"
	"github.com/adyen/storefront-ui/internal/logging"
	"github.com/adyen/storefront-ui/internal/pageobject"
	"github.com/adyen/storefront-ui/internal/repository"
	"github.com/adyen/storefront-ui/internal/services"
)

var version = "0.1.0"

func newLogger() (*logrus.Logger, error) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	return logging.New(level, os.Stderr)
}

// buildServerDependencies wires the fixture storefront
func buildServerDependencies(logger logrus.FieldLogger) (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	deps.ServerConfig = config.LoadServerConfig(os.Getenv)
	deps.Logger = logger

	catalogRepo, err := repository.NewCatalogRepository(repository.SeedProducts())
	if err != nil {
		return deps, fmt.Errorf("failed to load catalog: %w", err)
	}
	sessionRepo := repository.NewSessionRepository()

	router, err := handlers.NewRouter(handlers.Dependencies{
		Catalog:  services.NewCatalogService(catalogRepo),
		Sessions: services.NewSessionService(sessionRepo, catalogRepo, deps.ServerConfig.Account, logger),
		Logger:   logger,
	})
	if err != nil {
		return deps, fmt.Errorf("failed to create router: %w", err)
	}
	deps.Handler = router

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the fixture storefront",
		Action: func(c *cli.Context) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			deps, err := buildServerDependencies(logger)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// SmokeCommand returns the smoke command
func SmokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Run the built-in smoke checks against BASE_URL in a browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file overriding the environment configuration",
			},
			&cli.BoolFlag{
				Name:  "login",
				Usage: "also check a real sign-in; needs credentials from --config or TEST_EMAIL/TEST_PASSWORD",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, account, err := loadBrowserConfig(c.String("config"), c.Bool("login"))
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, os.Stderr)
			if err != nil {
				return err
			}

			driver, err := browser.Open(cfg)
			if err != nil {
				return err
			}
			defer driver.Close()

			logger.WithFields(logrus.Fields{
				"base_url": cfg.BaseURL,
				"driver":   cfg.Driver,
				"browser":  cfg.BrowserName,
				"sign_in":  account != nil,
			}).Info("Running smoke checks")

			opts := pageobject.NewOptions(cfg, logger)
			return internalcli.RunSmoke(driver, opts, internalcli.DefaultSmokeChecks(account), c.App.Writer)
		},
	}
}

// loadBrowserConfig reads the environment, applies the optional YAML file and
// resolves the sign-in account. The account is nil when none is configured
// and loginRequired is false.
func loadBrowserConfig(path string, loginRequired bool) (*config.BrowserConfig, *config.Credentials, error) {
	var (
		cfg       *config.BrowserConfig
		fileCreds *config.Credentials
		err       error
	)
	if path == "" {
		cfg, err = config.LoadBrowserConfig(os.Getenv)
	} else {
		cfg, fileCreds, err = config.LoadBrowserConfigWithFile(os.Getenv, path)
		if err != nil {
			err = fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	account, err := config.ResolveCredentials(os.Getenv, fileCreds, loginRequired)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve sign-in account: %w", err)
	}
	return cfg, account, nil
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the playwright driver and browsers",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "browser",
				Usage: "browser to install (chromium, firefox, webkit); repeatable",
				Value: cli.NewStringSlice(config.BrowserChromium),
			},
		},
		Action: func(c *cli.Context) error {
			return browser.InstallPlaywright(c.StringSlice("browser")...)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "storefrontui",
		Usage:   "Fixture storefront and browser smoke checks",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			SmokeCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
