package entity

import "github.com/paulmach/orb"

// Location is a geographic coordinate in degrees.
type Location struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// Point converts the location to an orb.Point (lon, lat).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// ClientLocation is a client's last known position together with the
// device token used for proximity notifications.
type ClientLocation struct {
	ClientID string   `json:"clientId" firestore:"-"`
	Location Location `json:"location" firestore:"location"`
	FCMToken string   `json:"fcmToken,omitempty" firestore:"fcmToken"`
}
