package bustracker

import (
	"encoding/xml"
	"fmt"

	"github.com/chitransit/ctabustracker/pkg/bustime"
)

type vehiclesResponse struct {
	XMLName  xml.Name         `xml:"bustime-response"`
	Vehicles []vehicleElement `xml:"vehicle"`
}

type vehicleElement struct {
	VID    *string `xml:"vid"`
	Tmstmp *string `xml:"tmstmp"`
	Lat    *string `xml:"lat"`
	Lon    *string `xml:"lon"`
	Hdg    *string `xml:"hdg"`
	PID    *string `xml:"pid"`
	RT     *string `xml:"rt"`
	Des    *string `xml:"des"`
	Pdist  *string `xml:"pdist"`
	Dly    *string `xml:"dly"`
}

// GetVehicle returns the live details of a single vehicle.
func (c *Client) GetVehicle(vehicleID string) (*bustime.Vehicle, error) {
	body, err := c.fetch(c.buildURL("getvehicles", map[string]string{"vid": vehicleID}))
	if err != nil {
		return nil, err
	}

	var response vehiclesResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	if len(response.Vehicles) > 1 {
		return nil, fmt.Errorf("%w: %d vehicles returned for id %s", ErrAmbiguousEntity, len(response.Vehicles), vehicleID)
	}
	if len(response.Vehicles) == 0 {
		return nil, fmt.Errorf("%w: no vehicle element for id %s", ErrMalformedResponse, vehicleID)
	}

	return vehicleRecord(response.Vehicles[0])
}

// GetRouteVehicles returns every vehicle currently active on a route,
// keyed by vehicle id.
func (c *Client) GetRouteVehicles(routeID string) (map[string]*bustime.Vehicle, error) {
	body, err := c.fetch(c.buildURL("getvehicles", map[string]string{"rt": routeID}))
	if err != nil {
		return nil, err
	}

	var response vehiclesResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	vehicles := map[string]*bustime.Vehicle{}
	for _, element := range response.Vehicles {
		vehicle, err := vehicleRecord(element)
		if err != nil {
			return nil, err
		}

		vehicles[vehicle.ID] = vehicle
	}

	return vehicles, nil
}

func vehicleRecord(element vehicleElement) (*bustime.Vehicle, error) {
	id, err := requireText(element.VID, "vehicle", "vid")
	if err != nil {
		return nil, err
	}

	lastUpdate, err := requireTime(element.Tmstmp, bustime.TimestampFormat, "vehicle", "tmstmp")
	if err != nil {
		return nil, err
	}

	latitude, err := requireFloat(element.Lat, "vehicle", "lat")
	if err != nil {
		return nil, err
	}

	longitude, err := requireFloat(element.Lon, "vehicle", "lon")
	if err != nil {
		return nil, err
	}

	heading, err := requireInt(element.Hdg, "vehicle", "hdg")
	if err != nil {
		return nil, err
	}

	patternID, err := requireText(element.PID, "vehicle", "pid")
	if err != nil {
		return nil, err
	}

	routeID, err := requireText(element.RT, "vehicle", "rt")
	if err != nil {
		return nil, err
	}

	destination, err := requireText(element.Des, "vehicle", "des")
	if err != nil {
		return nil, err
	}

	distance, err := requireFloat(element.Pdist, "vehicle", "pdist")
	if err != nil {
		return nil, err
	}

	return &bustime.Vehicle{
		ID:         id,
		LastUpdate: lastUpdate,

		Latitude:  latitude,
		Longitude: longitude,
		Heading:   heading,

		PatternID:   patternID,
		RouteID:     routeID,
		Destination: destination,

		DistanceIntoRoute: distance,

		Delayed: delayFlag(element.Dly),
	}, nil
}
