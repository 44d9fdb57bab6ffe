package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/bootstrap"
	btsConfig "github.com/Nazmul-SWE/FutureFinds-GadgetHub/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"

	"github.com/gin-gonic/gin"
)

func init() {
	// register the config entries under config/
	btsConfig.Initialize()
}

// App wraps the HTTP server for graceful shutdown
type App struct {
	server *http.Server
}

func main() {
	env := parseFlags()

	if err := setupApplication(env); err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	router := setupServer()

	app := &App{
		server: &http.Server{
			Addr:    ":" + config.Get("app.port"),
			Handler: router,
		},
	}

	app.start()
}

func parseFlags() string {
	var env string
	flag.StringVar(&env, "env", "", "load an .env file, e.g. --env=testing loads .env.testing")
	flag.Parse()
	return env
}

func setupApplication(env string) error {
	config.InitConfig(env)

	bootstrap.SetupLogger()

	bootstrap.SetupDB()

	bootstrap.SetupRedis()

	return nil
}

func setupServer() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	bootstrap.SetupRoute(router)

	return router
}

// start runs the server until an interrupt, then shuts down gracefully
func (a *App) start() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server starting on %s\n", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
