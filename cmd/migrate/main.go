package main

import (
	"os"
	"strings"

	"adscape/config"
	"adscape/helper"
	"adscape/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 {
		log.Fatal().Msgf("usage: migrate <%s>", strings.Join(helper.Actions(), "|"))
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Migrate(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
