package services

import (
	"context"
	"fmt"

	"github.com/avillagran/boletera/internal/client/models"
)

// TicketsService wraps ticket purchase and the PayPal capture step.
// Purchase endpoints require authentication; the PayPal pair does not
// (backend contract — the order is correlated by its own id).
type TicketsService interface {
	Purchase(ctx context.Context, req models.PurchaseRequest) (*models.Ticket, error)
	PurchaseMultiple(ctx context.Context, req models.MultiPurchaseRequest) ([]models.Ticket, error)
	CreatePayPalOrder(ctx context.Context, amount float64) (*models.PayPalOrder, error)
	CapturePayPalOrder(ctx context.Context, orderID string) (*models.PayPalCapture, error)
}

type ticketsService struct {
	api API
}

func NewTicketsService(api API) TicketsService {
	return &ticketsService{api: api}
}

func (s *ticketsService) Purchase(ctx context.Context, req models.PurchaseRequest) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.api.Post(ctx, "/api/vendedor/pasajes/comprar", req, true, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *ticketsService) PurchaseMultiple(ctx context.Context, req models.MultiPurchaseRequest) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.api.Post(ctx, "/api/vendedor/pasajes/comprar-multiple", req, true, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *ticketsService) CreatePayPalOrder(ctx context.Context, amount float64) (*models.PayPalOrder, error) {
	body := map[string]float64{"amount": amount}
	var order models.PayPalOrder
	if err := s.api.Post(ctx, "/api/paypal/orders", body, false, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *ticketsService) CapturePayPalOrder(ctx context.Context, orderID string) (*models.PayPalCapture, error) {
	path := fmt.Sprintf("/api/paypal/orders/%s/capture", orderID)
	var capture models.PayPalCapture
	if err := s.api.Post(ctx, path, struct{}{}, false, &capture); err != nil {
		return nil, err
	}
	return &capture, nil
}
