package httpapi

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options controls HTTP API runtime behavior (timeouts, logging).
type Options struct {
	// OverrideTimeout is the hard upper bound for a single override request
	// (upstream fetch + parse + synthesis + serialization).
	OverrideTimeout time.Duration

	// FetchTimeout is the per-request timeout used when pulling the upstream
	// configuration document.
	FetchTimeout time.Duration

	Logger *logrus.Logger
}

func (o Options) withDefaults() Options {
	if o.OverrideTimeout <= 0 {
		o.OverrideTimeout = 60 * time.Second
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}
