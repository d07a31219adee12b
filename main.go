package main

import (
	"log"
	"os"

	"curely/config"
	"curely/jobs"
	"curely/mail"
	"curely/otp"
	"curely/routes"
	"curely/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if err := config.ConnectDB(); err != nil {
		log.Fatal("Error connecting to mongo: ", err)
	}

	store := otp.NewStore()
	services.Access = services.NewAccessService(store, services.NewDirectory(), mail.SMTPSender{})
	jobs.StartOTPSweeper(store)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Routes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server: ", err)
	}
}
