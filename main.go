package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sjtech/spicon-recon/cmd/abstract"
	"sjtech/spicon-recon/cmd/attendance"
	"sjtech/spicon-recon/cmd/categories"
	"sjtech/spicon-recon/cmd/collections"
	"sjtech/spicon-recon/cmd/places"
	"sjtech/spicon-recon/cmd/root"
	"sjtech/spicon-recon/cmd/treasurer"
	"sjtech/spicon-recon/cmd/workers"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(abstract.Cmd)
	root.Cmd.AddCommand(collections.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(places.Cmd)
	root.Cmd.AddCommand(attendance.Cmd)
	root.Cmd.AddCommand(treasurer.Cmd)
	root.Cmd.AddCommand(workers.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before the first log line is emitted.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
