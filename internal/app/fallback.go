package app

import (
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// noteFallback records that source failed and a fixed value is being served instead.
func noteFallback(source string, err error) {
	log.Warn().Err(err).
		Str("source", source).
		Str("kind", domain.KindOf(err).String()).
		Msg("serving fallback")
	observability.ObserveFallback(source)
}
