// Package logger builds configured slog.Logger instances for formkit
// consumers.
//
// The factory defaults to JSON output at info level; options adjust level,
// format, destination and static attributes:
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "signup-form")),
//	)
//
//	p := form.NewPipeline(form.WithLogger(log))
package logger
