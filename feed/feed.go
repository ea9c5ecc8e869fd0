// Package feed resolves an ordered fallback chain of data sources into a
// single in-memory item set.
package feed

import (
	"context"
	"errors"

	"skylight/models"

	log "github.com/sirupsen/logrus"
)

// ErrFeedUnavailable is returned when every candidate source has been tried
// and none produced a non-empty item set. Callers surface this to the user
// instead of crashing.
var ErrFeedUnavailable = errors.New("feed unavailable: all sources failed or returned no items")

// Source is one candidate data source for the feed.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Item, error)
}

// Loader tries sources strictly in order and serves the first non-empty
// result. A source failure is recovered locally: it is logged as a warning
// and the next candidate is tried. Only full exhaustion is an error.
type Loader struct {
	sources []Source
}

func NewLoader(sources ...Source) *Loader {
	return &Loader{sources: sources}
}

// Sources returns the configured source names in fallback order.
func (l *Loader) Sources() []string {
	names := make([]string, len(l.sources))
	for i, source := range l.sources {
		names[i] = source.Name()
	}
	return names
}

// Load resolves the fallback chain. Per-item field defaults are not applied
// here; a non-empty but malformed-per-item payload is served as-is and the
// view layer fills the gaps.
func (l *Loader) Load(ctx context.Context) ([]models.Item, error) {
	timer := newLoadTimer()
	defer timer.observe()

	for _, source := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sourceAttempts.WithLabelValues(source.Name()).Inc()

		items, err := source.Fetch(ctx)
		if err != nil {
			sourceFailures.WithLabelValues(source.Name()).Inc()
			log.WithFields(log.Fields{
				"source": source.Name(),
				"error":  err,
			}).Warn("Feed source failed, trying next candidate")
			continue
		}

		if len(items) == 0 {
			sourceFailures.WithLabelValues(source.Name()).Inc()
			log.WithFields(log.Fields{
				"source": source.Name(),
			}).Warn("Feed source returned no items, trying next candidate")
			continue
		}

		loadsServed.WithLabelValues(source.Name()).Inc()
		log.WithFields(log.Fields{
			"source": source.Name(),
			"count":  len(items),
		}).Info("Feed loaded")
		return items, nil
	}

	loadFailures.Inc()
	return nil, ErrFeedUnavailable
}
