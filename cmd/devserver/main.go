// Command devserver runs a local stub of the Flowtrace backend so the
// CLI can be exercised without the real service.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/flowtrace/flowtrace/internal/config"
	"github.com/flowtrace/flowtrace/internal/devserver"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cfg, err := config.Load(os.Getenv("FLOWTRACE_CONFIG"))
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	store := devserver.NewStore()
	if err := store.Seed(cfg.DevServer.SeedEmail, cfg.DevServer.SeedPassword, cfg.DevServer.SeedFullName); err != nil {
		fmt.Printf("Failed to seed account store: %v\n", err)
		os.Exit(1)
	}

	h := devserver.NewHandler(store, Version)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))
	e.Use(middleware.BodyLimit(cfg.DevServer.BodyLimit))

	if cfg.DevServer.EnableCORS {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{
				"http://localhost:5173", "http://127.0.0.1:5173",
				"http://localhost:3000", "http://127.0.0.1:3000",
			},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}

	devserver.RegisterRoutes(e, h)

	s := &http.Server{
		Addr:         cfg.DevServerAddr(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Printf("Flowtrace dev backend %s (built %s)\n", Version, BuildTime)
	fmt.Printf("Listening on http://%s\n", cfg.DevServerAddr())
	fmt.Printf("Seeded account: %s / %s\n", cfg.DevServer.SeedEmail, cfg.DevServer.SeedPassword)

	e.Logger.Fatal(e.StartServer(s))
}
