// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Event kinds carrying location on the relay network.
const (
	KindPublicLocation    = 30472
	KindEncryptedLocation = 30473
)

// Visibility tells whether a location was published in the clear or
// encrypted for a recipient.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityEncrypted Visibility = "encrypted"
)

// VisibilityForKind maps an event kind to its visibility. Unknown kinds
// report false.
func VisibilityForKind(kind int) (Visibility, bool) {
	switch kind {
	case KindPublicLocation:
		return VisibilityPublic, true
	case KindEncryptedLocation:
		return VisibilityEncrypted, true
	default:
		return "", false
	}
}

// LocationRecord is a location recovered from a received event.
// Lat and Lon are the centre of the geohash cell, not the publisher's
// original fix.
type LocationRecord struct {
	EventID    string     `json:"event_id"`           // Id of the carrying event.
	Author     string     `json:"author"`             // Hex public key of the publisher.
	Geohash    string     `json:"geohash"`            // The geohash as published.
	Lat        float64    `json:"lat"`                // Latitude of the cell centre.
	Lon        float64    `json:"lon"`                // Longitude of the cell centre.
	Accuracy   *float64   `json:"accuracy,omitempty"` // Reported accuracy in meters, if any.
	DTag       string     `json:"d_tag"`              // Identifier of the tracked device.
	Timestamp  time.Time  `json:"timestamp"`          // created_at of the event.
	Visibility Visibility `json:"visibility"`
	Kind       int        `json:"kind"`
}

// Position is a raw fix reported by a device before it is encoded.
type Position struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
	Source     string    `json:"source"`
}
