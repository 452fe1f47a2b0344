package utils

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger applies the shared zerolog defaults and redirects output to
// OUTPUT_PATH when set. The returned func closes the redirect target.
func SetupLogger() func() {
	zerolog.TimeFieldFormat = "2006-01-02T15:04:05.99999Z07:00"

	outputPath := os.Getenv("OUTPUT_PATH")
	if outputPath == "" {
		return func() {}
	}

	writer, err := os.OpenFile(outputPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("output_path", outputPath).
			Msg("set logger output failed")
	}

	log.Logger = log.Logger.Output(writer)

	return func() { writer.Close() }
}
