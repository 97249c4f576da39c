package main

import (
	"context"
	"os"

	"divgame/cli"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		log.Error().Err(err).Msg("divgame failed")
		os.Exit(1)
	}
}
