package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-campus-canteen/localstore"
	"go-campus-canteen/middleware"
	"go-campus-canteen/routes"
	"go-campus-canteen/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	storage, err := localstore.New(dataDir)
	if err != nil {
		log.Fatalf("could not open local storage at %s: %v", dataDir, err)
	}
	app := store.New(storage)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Login, signup and the event socket are the only unauthenticated
	// routes; everything else needs a session token.
	routes.UserRoutes(router, app)
	router.Use(middleware.Authentication())
	routes.ProfileRoutes(router, app)
	routes.MenuRoutes(router, app)
	routes.CartRoutes(router, app)
	routes.OrderRoutes(router, app)
	routes.NotificationRoutes(router, app)

	router.Run(":" + port)
}
