package main

import (
	"log"

	"github.com/Anky1388/SFIRN/config"
	"github.com/Anky1388/SFIRN/routes"
	"github.com/Anky1388/SFIRN/services"
	"github.com/Anky1388/SFIRN/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	r := routes.SetupRouter(hub, push)
	r.Run(":8080")
}
