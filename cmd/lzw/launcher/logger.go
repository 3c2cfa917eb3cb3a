package launcher

import (
	"fmt"
	"io"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// sentryLevels are the levels forwarded to Sentry.
var sentryLevels = []logrus.Level{
	logrus.PanicLevel,
	logrus.FatalLevel,
	logrus.ErrorLevel,
}

// NewLogger builds the run logger. Verbosity 0..5 maps onto fatal..trace.
// A non-empty DSN adds a Sentry hook for error-level entries.
func NewLogger(cfg Config, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.Out = out
	log.SetLevel(logrus.Level(cfg.Logging.Verbosity + 1))

	switch cfg.Logging.Format {
	case "json":
		log.Formatter = &logrus.JSONFormatter{}
	default:
		log.Formatter = &logrus.TextFormatter{
			ForceColors:   cfg.Logging.Color,
			DisableColors: !cfg.Logging.Color,
			FullTimestamp: true,
		}
	}

	if cfg.Sentry.DSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.Sentry.DSN, sentryLevels)
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		log.AddHook(hook)
	}
	return log, nil
}
