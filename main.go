package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eco4-survey-crm/config"
	"github.com/eco4-survey-crm/database"
	"github.com/eco4-survey-crm/lib/realtime"
	"github.com/eco4-survey-crm/routes"
)

func main() {
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Open the survey store; this is the only unrecoverable startup failure
	db, err := database.Connect(config.DatabaseURL(), config.SQLitePath())
	if err != nil {
		log.Fatalf("Failed to initialize survey store: %v", err)
	}

	hub := realtime.NewHub()

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(router, db, hub)

	// Static dashboard
	router.StaticFile("/", "./public/index.html")
	router.StaticFile("/app.js", "./public/app.js")

	addr := config.ListenAddr()
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 ECO4 Survey CRM server running on http://%s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Hold the store open for the process lifetime, then release it
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}
}
