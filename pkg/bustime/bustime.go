// Package bustime defines the records returned by the BusTime v1 API and
// the wire constants shared by its response shapes. Every record is built
// from a single API response and never mutated afterwards; callers own the
// values they receive.
package bustime

// TimestampFormat is the layout of the tmstmp and prdtm timestamps carried
// on vehicle and prediction elements.
const TimestampFormat = "20060102 15:04"

// SystemTimeFormat is the layout of the system clock value returned by the
// gettime endpoint.
const SystemTimeFormat = "20060102 15:04:05"
