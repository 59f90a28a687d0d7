package payload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func TestNewQuote(t *testing.T) {
	p := NewQuote("q1", "c1", "Acme", 500, testTime)

	assert.Equal(t, "Nueva cotización recibida", p.Title)
	assert.Equal(t, "Has recibido una nueva cotización de Acme", p.Body)
	assert.Equal(t, "new_quote", p.Data["type"])
	assert.Equal(t, "q1", p.Data["quoteId"])
	assert.Equal(t, "c1", p.Data["clientId"])
	assert.Equal(t, "Acme", p.Data["clientName"])
	assert.Equal(t, "500", p.Data["amount"])
}

func TestPaymentReceived(t *testing.T) {
	p := PaymentReceived("p1", "o7", 1250.5, testTime)

	assert.Equal(t, "Pago recibido", p.Title)
	assert.Equal(t, "Has recibido un pago de 1250.5 por el pedido o7", p.Body)
	assert.Equal(t, "payment_received", p.Data["type"])
	assert.Equal(t, "p1", p.Data["paymentId"])
	assert.Equal(t, "o7", p.Data["orderId"])
}

func TestOrderUpdate(t *testing.T) {
	p := OrderUpdate("o7", "enviado", testTime)

	assert.Equal(t, "Actualización de pedido", p.Title)
	assert.Equal(t, "Tu pedido o7 ha sido actualizado a: enviado", p.Body)
	assert.Equal(t, "order_update", p.Data["type"])
	assert.Equal(t, "enviado", p.Data["status"])
}

func TestVendorNearby_RoundsDistanceToKilometers(t *testing.T) {
	p := VendorNearby("v1", 3499, testTime)
	assert.Equal(t, "Hay un vendedor cerca de ti (3 km)", p.Body)
	assert.Equal(t, "3499", p.Data["distance"])

	p = VendorNearby("v1", 3500, testTime)
	assert.Equal(t, "Hay un vendedor cerca de ti (4 km)", p.Body)
}

func TestTimestampIsRFC3339(t *testing.T) {
	p := NewQuote("q1", "c1", "Acme", 500, testTime)

	parsed, err := time.Parse(time.RFC3339, p.Data["timestamp"])
	require.NoError(t, err)
	assert.True(t, parsed.Equal(testTime))
}

func TestEmptyOptionalFieldsAreAbsent(t *testing.T) {
	p := NewQuote("q1", "", "", 0, testTime)

	_, hasClientID := p.Data["clientId"]
	_, hasClientName := p.Data["clientName"]
	assert.False(t, hasClientID)
	assert.False(t, hasClientName)
	assert.Equal(t, "0", p.Data["amount"])
}
