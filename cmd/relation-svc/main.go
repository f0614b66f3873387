package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"socialcore/internal/common"
	"socialcore/internal/config"
	"socialcore/internal/di"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using system env variables")
	}

	//step-1
	//load configuration
	cfg := config.Load()
	log.Println("Configuration Loaded")

	logger := common.InitLogger(cfg.Logging)
	defer logger.Sync()

	//step-2
	//wire up database, repositories, services and handlers
	app, err := di.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	log.Println("Dependencies wired Successfully")

	//step-3
	//router with jwt auth middleware in front of every route
	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	app.FriendHandler.RegisterRoutes(router)
	app.InviteHandler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      common.AuthMiddleware(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	//step-4
	//serve
	zap.L().Info("relation service listening", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}
