package bustracker

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/chitransit/ctabustracker/pkg/util"
)

// decodeResponse unmarshals a response body into the given envelope. The
// body is filtered for stray invalid UTF-8 and decoded honouring any
// charset declaration.
func decodeResponse(data []byte, into interface{}) error {
	decoder := xml.NewDecoder(util.NewValidUTF8Reader(bytes.NewReader(data)))
	decoder.CharsetReader = charset.NewReaderLabel

	if err := decoder.Decode(into); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

// The require helpers turn optional envelope fields into record fields,
// failing with ErrMalformedResponse when the element is absent or its text
// does not coerce.

func requireText(value *string, shape string, element string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: %s element is missing %s", ErrMalformedResponse, shape, element)
	}

	return *value, nil
}

func requireInt(value *string, shape string, element string) (int, error) {
	text, err := requireText(value, shape, element)
	if err != nil {
		return 0, err
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %s element has non-integer %s %q", ErrMalformedResponse, shape, element, text)
	}

	return parsed, nil
}

func requireFloat(value *string, shape string, element string) (float64, error) {
	text, err := requireText(value, shape, element)
	if err != nil {
		return 0, err
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s element has non-numeric %s %q", ErrMalformedResponse, shape, element, text)
	}

	return parsed, nil
}

func requireTime(value *string, layout string, shape string, element string) (time.Time, error) {
	text, err := requireText(value, shape, element)
	if err != nil {
		return time.Time{}, err
	}

	parsed, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s element has unparseable %s %q", ErrMalformedResponse, shape, element, text)
	}

	return parsed, nil
}

// delayFlag reports whether a dly element is present and exactly "true".
// Any other value, including different casing, means not delayed.
func delayFlag(value *string) bool {
	return value != nil && *value == "true"
}
