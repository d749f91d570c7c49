package main

import (
	"fmt"
	"os"

	"github.com/yungbote/storefront-backend/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	application.Log.Info("Starting storefront backend", "port", application.Cfg.Port, "store_backend", application.Cfg.StoreBackend)
	if err := application.Run(); err != nil {
		application.Log.Error("Server exited", "error", err)
		application.Close()
		os.Exit(1)
	}
}
