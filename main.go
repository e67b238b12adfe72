package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"notes-server/configs"
	"notes-server/controllers"
	middleware "notes-server/middlewares"
	"notes-server/repository"
	"notes-server/routes"
	service "notes-server/services"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	env := configs.LoadEnv()

	if env.ConsulAddress != "" {
		port, err := strconv.Atoi(env.Port)
		if err != nil {
			log.Fatalf("Invalid PORT %q: %v", env.Port, err)
		}
		err = configs.RegisterService(
			env.ConsulAddress,
			"notes-server",
			"notes-server",
			"localhost",
			port,
			fmt.Sprintf("http://localhost:%s/health", env.Port),
		)
		if err != nil {
			log.Printf("Consul service registration failed: %v", err)
		}
	}

	client := configs.ConnectMongo(env.MongoURI)
	redisClient := configs.ConnectRedis(env.RedisAddr)

	db := client.Database(env.DBName)

	orgRepo := repository.NewOrganizationRepository(db.Collection("organizations"))
	memberRepo := repository.NewMemberRepository(db.Collection("members"))
	noteRepo := repository.NewNoteRepository(db.Collection("notes"))

	if err := orgRepo.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to create organization indexes: %v", err)
	}
	if err := memberRepo.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to create member indexes: %v", err)
	}

	tenantService := service.NewTenantService(orgRepo, memberRepo)
	orgService := service.NewOrganizationService(orgRepo)
	memberService := service.NewMemberService(orgRepo, memberRepo)
	noteService := service.NewNoteService(orgRepo, noteRepo)

	orgController := controllers.NewOrganizationController(orgService)
	memberController := controllers.NewMemberController(memberService)
	noteController := controllers.NewNoteController(noteService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	p := fiberprometheus.New("notes-server")
	p.RegisterAt(app, "/metrics")
	app.Use(p.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	limiter := middleware.RateLimit(redisClient, env.RateLimitPerMinute, time.Minute)

	routes.OrganizationRoutes(app, orgController, limiter)
	routes.MemberRoutes(app, memberController, limiter)
	routes.NoteRoutes(app, noteController, tenantService, limiter)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	log.Printf("Starting server on port %s...", env.Port)
	if err := app.Listen(":" + env.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
