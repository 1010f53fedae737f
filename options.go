package hdt

import (
	"log"
	"os"
)

// config holds the tunables a LoadOption may adjust. defaultConfig
// returns the configuration used when no options are passed to Load.
type config struct {
	validateHeader bool
	logger         *log.Logger
}

func defaultConfig() config {
	return config{
		validateHeader: false,
		logger:         log.New(os.Stderr, "hdt: ", log.LstdFlags),
	}
}

// LoadOption configures a call to Load.
type LoadOption func(*config)

// ValidateHeader makes Load parse the header body as N-Triples and
// fail with a KindBadProperty LoadError if it doesn't parse, instead of storing
// it as opaque bytes. Off by default, since the header is metadata
// about the dataset and never required to answer triple-pattern
// queries.
func ValidateHeader() LoadOption {
	return func(c *config) { c.validateHeader = true }
}

// WithLogger replaces the logger a loaded Graph uses to report
// non-fatal term-resolution failures encountered while iterating
// triples (§7: a corrupt dictionary entry is logged and skipped rather
// than aborting the whole scan). The default logs to stderr prefixed
// "hdt: ".
func WithLogger(l *log.Logger) LoadOption {
	return func(c *config) { c.logger = l }
}
