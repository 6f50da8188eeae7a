// Package logging builds the zap loggers used by both binaries.
package logging

import (
	"go.uber.org/zap"
)

// NewNamed returns a named logger tuned for the environment: console
// output in development, JSON in everything else.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var cfg zap.Config
	if appEnv == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
