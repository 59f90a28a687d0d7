package entity

import "time"

// Payment is a payment recorded against an order.
type Payment struct {
	ID                 string     `json:"id" firestore:"-"`
	VendorID           string     `json:"vendorId" firestore:"vendorId"`
	OrderID            string     `json:"orderId" firestore:"orderId"`
	Amount             float64    `json:"amount" firestore:"amount"`
	NotificationSent   bool       `json:"notificationSent" firestore:"notificationSent"`
	NotificationSentAt *time.Time `json:"notificationSentAt,omitempty" firestore:"notificationSentAt"`
}
