package main

import (
	"os"

	"github.com/osa911/lifecycle/internal/cli"
	"github.com/osa911/lifecycle/internal/logging"
)

func main() {
	if err := cli.RunServer(""); err != nil {
		logging.GetGlobalLogger().Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
