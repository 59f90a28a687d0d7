package entity

import "time"

// Order is a client's purchase order. Status transitions trigger
// notifications; unchanged statuses are ignored.
type Order struct {
	ID                     string     `json:"id" firestore:"-"`
	ClientID               string     `json:"clientId" firestore:"clientId"`
	Status                 string     `json:"status" firestore:"status"`
	LastNotifiedStatus     string     `json:"lastNotifiedStatus,omitempty" firestore:"lastNotifiedStatus"`
	LastNotificationSent   bool       `json:"lastNotificationSent" firestore:"lastNotificationSent"`
	LastNotificationSentAt *time.Time `json:"lastNotificationSentAt,omitempty" firestore:"lastNotificationSentAt"`
}
