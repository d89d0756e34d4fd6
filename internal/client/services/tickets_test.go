package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avillagran/boletera/internal/client/models"
)

func TestPurchase(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/vendedor/pasajes/comprar": `{
			"id":11,"clienteId":7,"clienteNombre":"Ana Diaz","clienteEmail":"a@b.com",
			"viajeId":3,"origenViaje":"Montevideo","destinoViaje":"Salto",
			"fechaViaje":"2026-03-01","horaSalidaViaje":"08:00:00",
			"omnibusMatricula":"ABC1234","precio":850.5,"estado":"VENDIDO",
			"numeroAsiento":12,"fechaReserva":"2026-02-20T10:00:00"
		}`,
	}}
	svc := NewTicketsService(fa)

	ticket, err := svc.Purchase(context.Background(), models.PurchaseRequest{
		TripID: 3, ClientID: 7, SeatNumber: 12,
	})
	require.NoError(t, err)

	call := fa.lastCall()
	assert.True(t, call.includeAuth)
	body, err := json.Marshal(call.body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"viajeId":3,"clienteId":7,"numeroAsiento":12}`, string(body))

	assert.Equal(t, int64(11), ticket.ID)
	assert.Equal(t, models.TicketSold, ticket.Status)
	assert.Equal(t, 12, ticket.SeatNumber)
}

func TestPurchaseMultiple(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/vendedor/pasajes/comprar-multiple": `[
			{"id":11,"numeroAsiento":12,"estado":"VENDIDO"},
			{"id":12,"numeroAsiento":13,"estado":"VENDIDO"}
		]`,
	}}
	svc := NewTicketsService(fa)

	tickets, err := svc.PurchaseMultiple(context.Background(), models.MultiPurchaseRequest{
		TripID: 3, ClientID: 7, SeatNumbers: []int{12, 13},
	})
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	body, err := json.Marshal(fa.lastCall().body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"viajeId":3,"clienteId":7,"numerosAsiento":[12,13]}`, string(body))
}

func TestCreatePayPalOrder(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/paypal/orders": `{
			"id":"ORD-1","status":"CREATED",
			"links":[
				{"href":"https://paypal.test/self","rel":"self","method":"GET"},
				{"href":"https://paypal.test/approve","rel":"approve","method":"GET"}
			]
		}`,
	}}
	svc := NewTicketsService(fa)

	order, err := svc.CreatePayPalOrder(context.Background(), 850.5)
	require.NoError(t, err)

	call := fa.lastCall()
	// PayPal endpoints do not take the backend bearer token
	assert.False(t, call.includeAuth)
	assert.Equal(t, map[string]float64{"amount": 850.5}, call.body)

	assert.Equal(t, "ORD-1", order.ID)
	assert.Equal(t, "https://paypal.test/approve", order.ApprovalLink())
}

func TestCapturePayPalOrder(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/paypal/orders/ORD-1/capture": `{"id":"ORD-1","status":"COMPLETED","paymentSource":{"paypal":{}}}`,
	}}
	svc := NewTicketsService(fa)

	capture, err := svc.CapturePayPalOrder(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", capture.Status)
	assert.False(t, fa.lastCall().includeAuth)
	assert.NotNil(t, capture.PaymentSource)
}

func TestPayPalOrder_ApprovalLinkMissing(t *testing.T) {
	order := models.PayPalOrder{Links: []models.PayPalLink{{Href: "x", Rel: "self"}}}
	assert.Empty(t, order.ApprovalLink())
}
