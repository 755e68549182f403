package main

import (
	"fmt"
	"log"
	"os"

	_ "sistema_escolar/docs"
	"sistema_escolar/internal/auth"
	"sistema_escolar/internal/handlers"
	"sistema_escolar/internal/models"
	"sistema_escolar/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						API de eventos académicos del sistema escolar
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Cargando .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error al cargar .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.AcademicEvent{}); err != nil {
		log.Fatal("Error en la migración... ", err.Error())
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	api := r.Group("/api", auth.AuthMiddleware())
	{
		api.GET("/eventos", handlers.ListEventsHandler)
		api.GET("/eventos/:id", handlers.GetEventHandler)
		api.POST("/eventos", handlers.CreateEventHandler)
		api.PUT("/eventos", handlers.UpdateEventHandler)
		api.DELETE("/eventos/:id", handlers.DeleteEventHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error al iniciar el servidor...", err.Error())
	}
}
