package bustracker

import (
	"encoding/xml"

	"github.com/chitransit/ctabustracker/pkg/bustime"
)

type routesResponse struct {
	XMLName xml.Name       `xml:"bustime-response"`
	Routes  []routeElement `xml:"route"`
}

type routeElement struct {
	RT   *string `xml:"rt"`
	RtNm *string `xml:"rtnm"`
}

type directionsResponse struct {
	XMLName    xml.Name `xml:"bustime-response"`
	Directions []string `xml:"dir"`
}

// GetRoutes returns every route served by the system, keyed by route id.
func (c *Client) GetRoutes() (map[string]*bustime.Route, error) {
	body, err := c.fetch(c.buildURL("getroutes", nil))
	if err != nil {
		return nil, err
	}

	var response routesResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	routes := map[string]*bustime.Route{}
	for _, element := range response.Routes {
		id, err := requireText(element.RT, "route", "rt")
		if err != nil {
			return nil, err
		}

		name, err := requireText(element.RtNm, "route", "rtnm")
		if err != nil {
			return nil, err
		}

		routes[id] = &bustime.Route{
			ID:   id,
			Name: name,
		}
	}

	return routes, nil
}

// GetRouteDirections returns the directions of travel served by a route,
// for example "East Bound".
func (c *Client) GetRouteDirections(routeID string) ([]string, error) {
	body, err := c.fetch(c.buildURL("getdirections", map[string]string{"rt": routeID}))
	if err != nil {
		return nil, err
	}

	var response directionsResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	return response.Directions, nil
}
