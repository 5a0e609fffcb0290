package bustracker

import (
	"encoding/xml"

	"github.com/chitransit/ctabustracker/pkg/bustime"
)

type stopsResponse struct {
	XMLName xml.Name      `xml:"bustime-response"`
	Stops   []stopElement `xml:"stop"`
}

type stopElement struct {
	StpID *string `xml:"stpid"`
	StpNm *string `xml:"stpnm"`
	Lat   *string `xml:"lat"`
	Lon   *string `xml:"lon"`
}

// GetRouteStops returns the stops served by a route in one direction of
// travel, keyed by stop id. Stop entries missing an id, name or
// coordinate are skipped, the feed sometimes carries stops that are not
// fully described.
func (c *Client) GetRouteStops(routeID string, direction string) (map[string]*bustime.Stop, error) {
	body, err := c.fetch(c.buildURL("getstops", map[string]string{"rt": routeID, "dir": direction}))
	if err != nil {
		return nil, err
	}

	var response stopsResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	stops := map[string]*bustime.Stop{}
	for _, element := range response.Stops {
		if element.StpID == nil || element.StpNm == nil || element.Lat == nil || element.Lon == nil {
			event := c.logger.Debug()
			if element.StpID != nil {
				event = event.Str("stpid", *element.StpID)
			}
			event.Msg("Skipping stop with missing elements")

			continue
		}

		latitude, err := requireFloat(element.Lat, "stop", "lat")
		if err != nil {
			return nil, err
		}

		longitude, err := requireFloat(element.Lon, "stop", "lon")
		if err != nil {
			return nil, err
		}

		stops[*element.StpID] = &bustime.Stop{
			ID:   *element.StpID,
			Name: *element.StpNm,

			Latitude:  latitude,
			Longitude: longitude,
		}
	}

	return stops, nil
}
