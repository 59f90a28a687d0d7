package entity

import "time"

// Quote is a pricing request created by a client for a vendor.
// The notification flags are mutated exactly once per logical event.
type Quote struct {
	ID                 string     `json:"id" firestore:"-"`
	VendorID           string     `json:"vendorId" firestore:"vendorId"`
	ClientID           string     `json:"clientId" firestore:"clientId"`
	ClientName         string     `json:"clientName" firestore:"clientName"`
	TotalAmount        float64    `json:"totalAmount" firestore:"totalAmount"`
	NotificationSent   bool       `json:"notificationSent" firestore:"notificationSent"`
	NotificationSentAt *time.Time `json:"notificationSentAt,omitempty" firestore:"notificationSentAt"`
}
