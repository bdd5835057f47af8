package zerologmsg

import (
	"errors"

	"github.com/rs/zerolog"
)

func handle(log zerolog.Logger) {
	err := errors.New("load failed")

	log.Error().Err(err).Msg("Call")
	log.Info().Str("address", ":8000").Send()

	log.Error().Err(err)          // want "zerolog event is never sent, finish it with Msg or Send"
	log.Info().Int("records", 10) // want "zerolog event is never sent, finish it with Msg or Send"

	ev := log.Debug()
	ev.Msg("done")
}
