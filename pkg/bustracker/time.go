package bustracker

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/chitransit/ctabustracker/pkg/bustime"
)

type timeResponse struct {
	XMLName xml.Name `xml:"bustime-response"`
	Times   []string `xml:"tm"`
}

// GetTime returns the BusTime system clock.
func (c *Client) GetTime() (time.Time, error) {
	body, err := c.fetch(c.buildURL("gettime", nil))
	if err != nil {
		return time.Time{}, err
	}

	var response timeResponse
	if err := decodeResponse(body, &response); err != nil {
		return time.Time{}, err
	}

	if len(response.Times) == 0 {
		return time.Time{}, fmt.Errorf("%w: no tm element in gettime response", ErrMalformedResponse)
	}

	parsed, err := time.Parse(bustime.SystemTimeFormat, response.Times[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unparseable tm value %q", ErrMalformedResponse, response.Times[0])
	}

	return parsed, nil
}
