package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/quinnbmay/mem0-webhook/webhookservice"
)

func main() {
	if err := webhookservice.Run(); err != nil {
		log.Error().Err(err).Msg("mem0-webhook exited with error")
		os.Exit(1)
	}
}
