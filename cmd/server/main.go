package main

import (
	"github.com/sirupsen/logrus"

	_ "github.com/dongwonkwak/boardly-sub002/docs"
	"github.com/dongwonkwak/boardly-sub002/internal/config"
	"github.com/dongwonkwak/boardly-sub002/internal/server"
)

// @title           Boardly API
// @version         1.0
// @description     Collaborative board management API.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	s, err := server.Init(cfg, log)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
