package bustracker

import (
	"encoding/xml"

	"github.com/chitransit/ctabustracker/pkg/bustime"
)

type bulletinsResponse struct {
	XMLName   xml.Name          `xml:"bustime-response"`
	Bulletins []bulletinElement `xml:"sb"`
}

type bulletinElement struct {
	Subject  *string        `xml:"sbj"`
	Details  *string        `xml:"dtl"`
	Brief    *string        `xml:"brf"`
	Priority *string        `xml:"prty"`
	Services []affectedList `xml:"srvc"`
}

// affectedList collects the stop and route ids named inside a srvc
// element, in document order. Other children are ignored.
type affectedList struct {
	affected []bustime.AffectedService
}

func (l *affectedList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "stpid":
				var id string
				if err := d.DecodeElement(&id, &t); err != nil {
					return err
				}

				l.affected = append(l.affected, bustime.AffectedService{Kind: bustime.AffectsKindStop, ID: id})
			case "rt":
				var id string
				if err := d.DecodeElement(&id, &t); err != nil {
					return err
				}

				l.affected = append(l.affected, bustime.AffectedService{Kind: bustime.AffectsKindRoute, ID: id})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// GetRouteServiceBulletins returns the bulletins affecting a route. A
// direction narrows the query to one direction of travel, the empty
// string covers both.
func (c *Client) GetRouteServiceBulletins(routeID string, direction string) ([]*bustime.ServiceBulletin, error) {
	params := map[string]string{"rt": routeID}
	if direction != "" {
		params["rtdir"] = direction
	}

	return c.serviceBulletins(params)
}

// GetStopServiceBulletins returns the bulletins affecting a stop.
func (c *Client) GetStopServiceBulletins(stopID string) ([]*bustime.ServiceBulletin, error) {
	return c.serviceBulletins(map[string]string{"stpid": stopID})
}

func (c *Client) serviceBulletins(params map[string]string) ([]*bustime.ServiceBulletin, error) {
	body, err := c.fetch(c.buildURL("getservicebulletins", params))
	if err != nil {
		return nil, err
	}

	var response bulletinsResponse
	if err := decodeResponse(body, &response); err != nil {
		return nil, err
	}

	var bulletins []*bustime.ServiceBulletin
	for _, element := range response.Bulletins {
		bulletin, err := bulletinRecord(element)
		if err != nil {
			return nil, err
		}

		bulletins = append(bulletins, bulletin)
	}

	return bulletins, nil
}

func bulletinRecord(element bulletinElement) (*bustime.ServiceBulletin, error) {
	title, err := requireText(element.Subject, "service bulletin", "sbj")
	if err != nil {
		return nil, err
	}

	details, err := requireText(element.Details, "service bulletin", "dtl")
	if err != nil {
		return nil, err
	}

	brief, err := requireText(element.Brief, "service bulletin", "brf")
	if err != nil {
		return nil, err
	}

	priority, err := requireText(element.Priority, "service bulletin", "prty")
	if err != nil {
		return nil, err
	}

	bulletin := &bustime.ServiceBulletin{
		Title:        title,
		DetailsFull:  details,
		DetailsShort: brief,
		Priority:     priority,
	}

	// Bulletins without a srvc element apply system wide and carry an
	// empty affects list.
	if len(element.Services) > 0 {
		bulletin.Affects = element.Services[0].affected
	}

	return bulletin, nil
}
