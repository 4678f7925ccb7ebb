package main

import (
	"fmt"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/adapter"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/client"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/service"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("friendlist-remover")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	accountAdapter, err := adapter.NewAccountAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create account adapter")
	}

	friendsAdapter, err := adapter.NewFriendsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create friends adapter")
	}

	services := service.NewClientServices(accountAdapter, friendsAdapter, cfg, log)

	ui, err := tui.New(cfg.UI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
