// Package entity contains the core business objects of the project.
package entity

// Recipient is a user record holding a device token. Vendors and clients
// share the same shape; their usage is disjoint.
type Recipient struct {
	ID       string `json:"id" firestore:"-"`
	FCMToken string `json:"fcmToken,omitempty" firestore:"fcmToken"`
}

// CanReceivePush reports whether the recipient has a device token.
// A missing token is a terminal condition for the triggering event.
func (r *Recipient) CanReceivePush() bool {
	return r.FCMToken != ""
}
