package models

import "encoding/json"

// Ticket states issued by the backend.
const (
	TicketSold     = "VENDIDO"
	TicketCanceled = "CANCELADO"
	TicketReserved = "RESERVADO"
)

// Ticket is a sold seat as returned by the purchase endpoints.
type Ticket struct {
	ID            int64   `json:"id"`
	ClientID      int64   `json:"clienteId"`
	ClientName    string  `json:"clienteNombre"`
	ClientEmail   string  `json:"clienteEmail"`
	TripID        int64   `json:"viajeId"`
	TripOrigin    string  `json:"origenViaje"`
	TripDest      string  `json:"destinoViaje"`
	TripDate      string  `json:"fechaViaje"`
	TripDeparture string  `json:"horaSalidaViaje"`
	BusPlate      string  `json:"omnibusMatricula"`
	Price         float64 `json:"precio"`
	Status        string  `json:"estado"`
	SeatNumber    int     `json:"numeroAsiento"`
	ReservedAt    string  `json:"fechaReserva"`
}

// PurchaseRequest is the body of the single-seat purchase endpoint.
type PurchaseRequest struct {
	TripID     int64 `json:"viajeId"`
	ClientID   int64 `json:"clienteId"`
	SeatNumber int   `json:"numeroAsiento"`
}

// MultiPurchaseRequest is the body of the multi-seat purchase endpoint.
type MultiPurchaseRequest struct {
	TripID      int64 `json:"viajeId"`
	ClientID    int64 `json:"clienteId"`
	SeatNumbers []int `json:"numerosAsiento"`
}

// PayPalLink is one HATEOAS link in a PayPal order.
type PayPalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// PayPalOrder is the body returned by POST /api/paypal/orders.
type PayPalOrder struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Links  []PayPalLink `json:"links"`
}

// ApprovalLink returns the link the payer must visit to approve the order,
// or "" if the order carries none.
func (o *PayPalOrder) ApprovalLink() string {
	for _, l := range o.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			return l.Href
		}
	}
	return ""
}

// PayPalCapture is the body returned by the order capture endpoint. The
// payment source is passed through untyped.
type PayPalCapture struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	PaymentSource json.RawMessage `json:"paymentSource,omitempty"`
}
