package bustracker

import (
	"encoding/xml"

	"github.com/chitransit/ctabustracker/pkg/bustime"
)

type predictionsResponse struct {
	XMLName     xml.Name            `xml:"bustime-response"`
	Predictions []predictionElement `xml:"prd"`
}

type predictionElement struct {
	Tmstmp *string `xml:"tmstmp"`
	Typ    *string `xml:"typ"`
	StpID  *string `xml:"stpid"`
	StpNm  *string `xml:"stpnm"`
	Dstp   *string `xml:"dstp"`
	VID    *string `xml:"vid"`
	RT     *string `xml:"rt"`
	RtDir  *string `xml:"rtdir"`
	Des    *string `xml:"des"`
	PrdTm  *string `xml:"prdtm"`
	Dly    *string `xml:"dly"`
}

// GetVehiclePredictions returns the upcoming stop predictions for a single
// vehicle, in the order the API reported them.
func (c *Client) GetVehiclePredictions(vehicleID string) ([]*bustime.Prediction, error) {
	return c.predictions(map[string]string{"vid": vehicleID})
}

// GetRoutePredictions returns the current predictions across a whole
// route.
func (c *Client) GetRoutePredictions(routeID string) ([]*bustime.Prediction, error) {
	return c.predictions(map[string]string{"rt": routeID})
}

// GetStopPredictions returns the predictions for vehicles approaching a
// single stop.
func (c *Client) GetStopPredictions(stopID string) ([]*bustime.Prediction, error) {
	return c.predictions(map[string]string{"stpid": stopID})
}

func (c *Client) predictions(params map[string]string) ([]*bustime.Prediction, error) {
	body, err := c.fetch(c.buildURL("getpredictions", params))
	if err != nil {
		return nil, err
	}

	var response predictionsResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	var predictions []*bustime.Prediction
	for _, element := range response.Predictions {
		prediction, err := predictionRecord(element)
		if err != nil {
			return nil, err
		}

		predictions = append(predictions, prediction)
	}

	return predictions, nil
}

func predictionRecord(element predictionElement) (*bustime.Prediction, error) {
	lastUpdate, err := requireTime(element.Tmstmp, bustime.TimestampFormat, "prediction", "tmstmp")
	if err != nil {
		return nil, err
	}

	predictionType, err := requireText(element.Typ, "prediction", "typ")
	if err != nil {
		return nil, err
	}

	stopID, err := requireText(element.StpID, "prediction", "stpid")
	if err != nil {
		return nil, err
	}

	stopName, err := requireText(element.StpNm, "prediction", "stpnm")
	if err != nil {
		return nil, err
	}

	distance, err := requireInt(element.Dstp, "prediction", "dstp")
	if err != nil {
		return nil, err
	}

	vehicleID, err := requireText(element.VID, "prediction", "vid")
	if err != nil {
		return nil, err
	}

	routeID, err := requireText(element.RT, "prediction", "rt")
	if err != nil {
		return nil, err
	}

	direction, err := requireText(element.RtDir, "prediction", "rtdir")
	if err != nil {
		return nil, err
	}

	destination, err := requireText(element.Des, "prediction", "des")
	if err != nil {
		return nil, err
	}

	predictionTime, err := requireTime(element.PrdTm, bustime.TimestampFormat, "prediction", "prdtm")
	if err != nil {
		return nil, err
	}

	return &bustime.Prediction{
		LastUpdate: lastUpdate,
		Type:       bustime.PredictionType(predictionType),

		StopID:   stopID,
		StopName: stopName,

		DistanceToDestination: distance,

		VehicleID:   vehicleID,
		RouteID:     routeID,
		Direction:   direction,
		Destination: destination,

		PredictionTime: predictionTime,
		Delayed:        delayFlag(element.Dly),
	}, nil
}
