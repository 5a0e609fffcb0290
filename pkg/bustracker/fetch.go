package bustracker

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// fetch performs a GET against url, retrying per the Client's retry
// settings. The returned error wraps ErrTransport once every attempt has
// failed.
func (c *Client) fetch(url string) ([]byte, error) {
	c.logger.Debug().Str("url", url).Msg("Requesting")

	var body []byte

	attempt := func() error {
		resp, err := c.httpClient.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("HTTP %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)

		return err
	}

	if !c.retryURLs || c.retryAttempts <= 1 {
		if err := attempt(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}

		return body, nil
	}

	backoffPolicy := backoff.NewExponentialBackOff()
	backoffPolicy.InitialInterval = c.retryDelay
	backoffPolicy.Multiplier = c.retryBackoff
	// The wait schedule is fully determined by the attempt budget, with
	// no jitter and no cap on the individual waits.
	backoffPolicy.RandomizationFactor = 0
	backoffPolicy.MaxInterval = math.MaxInt64
	backoffPolicy.MaxElapsedTime = 0

	notify := func(err error, delay time.Duration) {
		c.logger.Warn().Err(err).Dur("delay", delay).Msg("Request failed, retrying")
	}

	retries := uint64(c.retryAttempts - 1)
	if err := backoff.RetryNotify(attempt, backoff.WithMaxRetries(backoffPolicy, retries), notify); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return body, nil
}
