// Command papertrader runs an interactive single-user stock trading
// simulation: a fixed market, one account, and a menu-driven session.
//
// Usage:
//
//	papertrader                  (built-in market and account)
//	papertrader --config c.yaml  (owner, balance and catalog from yaml)
//	papertrader --setup          (interactive wizard, writes config.gen.yaml)
package main

import (
	"flag"
	"log"
	"os"

	"github.com/vadiminshakov/papertrader/config"
	"github.com/vadiminshakov/papertrader/internal/services/account"
	"github.com/vadiminshakov/papertrader/internal/services/market"
	"github.com/vadiminshakov/papertrader/internal/services/session"
	"github.com/vadiminshakov/papertrader/internal/setup"
	"go.uber.org/zap"
)

func main() {
	runSetup := flag.Bool("setup", false, "run the interactive configuration wizard")

	// config.Get parses the flags, including --setup above.
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if *runSetup {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		cfg, err = config.Load(config.GeneratedFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	catalog := market.NewCatalog(cfg.Instruments)
	acc := account.New(cfg.Owner, cfg.Balance, logger)

	sess := session.New(catalog, acc, os.Stdin, os.Stdout, logger)
	if err := sess.Run(); err != nil {
		logger.Fatal("session error", zap.Error(err))
	}
}
