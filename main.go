package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"process-scheduler/api"
	"process-scheduler/config"
)

func main() {
	schedulerConfig := config.GetSchedulerConfig()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(schedulerConfig))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", schedulerConfig.Port)))
}
