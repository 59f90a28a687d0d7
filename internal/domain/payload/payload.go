// Package payload builds push notification payloads for each event kind.
// FCM requires homogeneous string values in the data map, so every field
// is stringified and timestamps are serialized as RFC 3339.
package payload

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies a notification event kind as carried in the data map.
type Kind string

const (
	KindNewQuote        Kind = "new_quote"
	KindPaymentReceived Kind = "payment_received"
	KindOrderUpdate     Kind = "order_update"
	KindVendorNearby    Kind = "vendor_nearby"
)

// Payload is the title/body/data triple sent to the push provider.
type Payload struct {
	Title string
	Body  string
	Data  map[string]string
}

// NewQuote builds the payload for a quote created by a client.
func NewQuote(quoteID, clientID, clientName string, totalAmount float64, at time.Time) Payload {
	return build(
		KindNewQuote,
		"Nueva cotización recibida",
		fmt.Sprintf("Has recibido una nueva cotización de %s", clientName),
		at,
		map[string]string{
			"quoteId":    quoteID,
			"clientId":   clientID,
			"clientName": clientName,
			"amount":     formatAmount(totalAmount),
		},
	)
}

// PaymentReceived builds the payload for a payment recorded against an order.
func PaymentReceived(paymentID, orderID string, amount float64, at time.Time) Payload {
	return build(
		KindPaymentReceived,
		"Pago recibido",
		fmt.Sprintf("Has recibido un pago de %s por el pedido %s", formatAmount(amount), orderID),
		at,
		map[string]string{
			"paymentId": paymentID,
			"orderId":   orderID,
			"amount":    formatAmount(amount),
		},
	)
}

// OrderUpdate builds the payload for an order status transition.
func OrderUpdate(orderID, status string, at time.Time) Payload {
	return build(
		KindOrderUpdate,
		"Actualización de pedido",
		fmt.Sprintf("Tu pedido %s ha sido actualizado a: %s", orderID, status),
		at,
		map[string]string{
			"orderId": orderID,
			"status":  status,
		},
	)
}

// VendorNearby builds the payload for a vendor within proximity of a client.
// The body reports the distance rounded to whole kilometers.
func VendorNearby(vendorID string, distanceMeters float64, at time.Time) Payload {
	return build(
		KindVendorNearby,
		"Vendedor cercano",
		fmt.Sprintf("Hay un vendedor cerca de ti (%d km)", int(math.Round(distanceMeters/1000))),
		at,
		map[string]string{
			"vendorId": vendorID,
			"distance": strconv.FormatFloat(distanceMeters, 'f', -1, 64),
		},
	)
}

// build assembles the final payload. Empty field values become absent keys
// so the data map never carries placeholder entries.
func build(kind Kind, title, body string, at time.Time, fields map[string]string) Payload {
	data := make(map[string]string, len(fields)+2)
	data["type"] = string(kind)
	data["timestamp"] = at.UTC().Format(time.RFC3339)

	for key, value := range fields {
		if value == "" {
			continue
		}
		data[key] = value
	}

	return Payload{
		Title: title,
		Body:  body,
		Data:  data,
	}
}

// formatAmount renders a monetary amount without trailing zeros,
// matching how amounts appear elsewhere in the platform.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
