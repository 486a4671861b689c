// Package logger builds configured log/slog loggers for the Swayleo services.
//
// It provides JSON output for production log aggregation and text output for
// local development, plus presets that stamp every record with the service
// name and environment.
//
//	log := logger.New(
//	    logger.WithProduction("generation"),
//	)
//	log.Info("email generated", "provider", "deepseek")
package logger
