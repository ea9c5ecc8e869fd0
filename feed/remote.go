package feed

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"skylight/apod"
	"skylight/models"
)

const (
	remoteInitialInterval = 500 * time.Millisecond
	remoteMaxInterval     = 5 * time.Second
	remoteMaxElapsedTime  = 15 * time.Second
)

// RemoteSource fetches the feed from the remote API. Transient failures are
// retried with exponential backoff before the source gives up and lets the
// loader fall through to the local candidates.
type RemoteSource struct {
	client *apod.Client
}

func NewRemoteSource(client *apod.Client) *RemoteSource {
	return &RemoteSource{client: client}
}

func (s *RemoteSource) Name() string {
	return "remote"
}

func (s *RemoteSource) Fetch(ctx context.Context) ([]models.Item, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = remoteInitialInterval
	bo.MaxInterval = remoteMaxInterval
	bo.MaxElapsedTime = remoteMaxElapsedTime

	var items []models.Item
	operation := func() error {
		fetched, err := s.client.FetchItems(ctx)
		if err != nil {
			// 4xx responses will not get better with retries
			if apod.IsClientError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		items = fetched
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	return items, nil
}
