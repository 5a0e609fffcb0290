package bustracker

import (
	"encoding/xml"
	"fmt"

	"github.com/chitransit/ctabustracker/pkg/bustime"
)

type patternsResponse struct {
	XMLName  xml.Name         `xml:"bustime-response"`
	Patterns []patternElement `xml:"ptr"`
}

type patternElement struct {
	PID    *string        `xml:"pid"`
	Length *string        `xml:"ln"`
	RtDir  *string        `xml:"rtdir"`
	Points []pointElement `xml:"pt"`
}

type pointElement struct {
	Seq   *string `xml:"seq"`
	Typ   *string `xml:"typ"`
	Lat   *string `xml:"lat"`
	Lon   *string `xml:"lon"`
	StpID *string `xml:"stpid"`
	StpNm *string `xml:"stpnm"`
}

// GetPattern returns a single pattern by id.
func (c *Client) GetPattern(patternID string) (*bustime.Pattern, error) {
	body, err := c.fetch(c.buildURL("getpatterns", map[string]string{"pid": patternID}))
	if err != nil {
		return nil, err
	}

	var response patternsResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	if len(response.Patterns) > 1 {
		return nil, fmt.Errorf("%w: %d patterns returned for id %s", ErrAmbiguousEntity, len(response.Patterns), patternID)
	}
	if len(response.Patterns) == 0 {
		return nil, fmt.Errorf("%w: no ptr element for id %s", ErrMalformedResponse, patternID)
	}

	return patternRecord(response.Patterns[0])
}

// GetRoutePatterns returns every pattern a route follows, keyed by
// pattern id.
func (c *Client) GetRoutePatterns(routeID string) (map[string]*bustime.Pattern, error) {
	body, err := c.fetch(c.buildURL("getpatterns", map[string]string{"rt": routeID}))
	if err != nil {
		return nil, err
	}

	var response patternsResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	patterns := map[string]*bustime.Pattern{}
	for _, element := range response.Patterns {
		pattern, err := patternRecord(element)
		if err != nil {
			return nil, err
		}

		patterns[pattern.ID] = pattern
	}

	return patterns, nil
}

func patternRecord(element patternElement) (*bustime.Pattern, error) {
	id, err := requireText(element.PID, "pattern", "pid")
	if err != nil {
		return nil, err
	}

	// The pattern length is reported as a decimal number of feet.
	lengthFeet, err := requireFloat(element.Length, "pattern", "ln")
	if err != nil {
		return nil, err
	}

	direction, err := requireText(element.RtDir, "pattern", "rtdir")
	if err != nil {
		return nil, err
	}

	pattern := &bustime.Pattern{
		ID: id,

		Length: int(lengthFeet),

		RouteDirection: direction,

		Path: map[int]*bustime.PathPoint{},
	}

	for _, point := range element.Points {
		pathPoint, err := pathPointRecord(point)
		if err != nil {
			return nil, err
		}

		pattern.Path[pathPoint.Sequence] = pathPoint
	}

	return pattern, nil
}

func pathPointRecord(element pointElement) (*bustime.PathPoint, error) {
	sequence, err := requireInt(element.Seq, "path point", "seq")
	if err != nil {
		return nil, err
	}

	pointType, err := requireText(element.Typ, "path point", "typ")
	if err != nil {
		return nil, err
	}

	latitude, err := requireFloat(element.Lat, "path point", "lat")
	if err != nil {
		return nil, err
	}

	longitude, err := requireFloat(element.Lon, "path point", "lon")
	if err != nil {
		return nil, err
	}

	pathPoint := &bustime.PathPoint{
		Sequence: sequence,
		Type:     bustime.PointType(pointType),

		Latitude:  latitude,
		Longitude: longitude,
	}

	// Stop points also carry the stop they represent.
	if pathPoint.Type == bustime.PointTypeStop {
		stopID, err := requireText(element.StpID, "path point", "stpid")
		if err != nil {
			return nil, err
		}

		stopName, err := requireText(element.StpNm, "path point", "stpnm")
		if err != nil {
			return nil, err
		}

		pathPoint.StopID = &stopID
		pathPoint.StopName = &stopName
	}

	return pathPoint, nil
}
