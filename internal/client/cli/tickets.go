package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/avillagran/boletera/internal/client/models"
)

// Buy runs the interactive checkout: pick a trip and seats, pay the total
// through PayPal, and only then ask the backend to sell the seats. The
// purchase is skipped entirely unless the capture reports COMPLETED.
func (a *App) Buy(ctx context.Context) error {
	user, ok := a.session.CurrentUser()
	if !ok {
		return errors.New("not authenticated")
	}

	tripArg, err := getSimpleText(a.reader, "Enter trip id", os.Stdout)
	if err != nil {
		return err
	}
	tripID, err := strconv.ParseInt(tripArg, 10, 64)
	if err != nil {
		return errors.New("trip id must be a number")
	}

	seatMap, err := a.trips.SeatDetails(ctx, tripID)
	if err != nil {
		return err
	}
	printSeatMap(seatMap)

	seatArg, err := getSimpleText(a.reader, "Enter seat numbers (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}
	seats, err := parseSeats(seatArg, seatMap)
	if err != nil {
		return err
	}

	total := seatMap.Price * float64(len(seats))
	printlnFn(fmt.Sprintf("Total: $%.2f for %d seat(s)", total, len(seats)))

	order, err := a.tickets.CreatePayPalOrder(ctx, total)
	if err != nil {
		return err
	}

	link := order.ApprovalLink()
	if link == "" {
		return errors.New("payment order has no approval link")
	}
	printlnFn("Approve the payment at:")
	printlnFn(link)

	if _, err := getSimpleText(a.reader, "Press Enter once the payment is approved", os.Stdout); err != nil {
		return err
	}

	capture, err := a.tickets.CapturePayPalOrder(ctx, order.ID)
	if err != nil {
		return err
	}
	if capture.Status != "COMPLETED" {
		return fmt.Errorf("payment not completed: %s", capture.Status)
	}
	printlnFn("Payment completed.")

	tickets, err := a.purchase(ctx, tripID, user.ID, seats)
	if err != nil {
		return err
	}

	for _, t := range tickets {
		printlnFn(fmt.Sprintf("Ticket #%d seat %d  %s → %s  %s %s  [%s]",
			t.ID, t.SeatNumber, t.TripOrigin, t.TripDest, t.TripDate,
			t.TripDeparture, t.Status))
	}
	return nil
}

func (a *App) purchase(ctx context.Context, tripID, clientID int64, seats []int) ([]models.Ticket, error) {
	if len(seats) == 1 {
		t, err := a.tickets.Purchase(ctx, models.PurchaseRequest{
			TripID:     tripID,
			ClientID:   clientID,
			SeatNumber: seats[0],
		})
		if err != nil {
			return nil, err
		}
		return []models.Ticket{*t}, nil
	}
	return a.tickets.PurchaseMultiple(ctx, models.MultiPurchaseRequest{
		TripID:      tripID,
		ClientID:    clientID,
		SeatNumbers: seats,
	})
}

// parseSeats turns "3, 7,12" into seat numbers, rejecting duplicates, seats
// outside the bus and seats already sold.
func parseSeats(s string, m *models.SeatMap) ([]int, error) {
	var seats []int
	seen := map[int]bool{}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid seat number %q", part)
		}
		if n < 1 || (m.Capacity > 0 && n > m.Capacity) {
			return nil, fmt.Errorf("seat %d does not exist on this bus", n)
		}
		if m.IsOccupied(n) {
			return nil, fmt.Errorf("seat %d is already taken", n)
		}
		if seen[n] {
			return nil, fmt.Errorf("seat %d listed twice", n)
		}
		seen[n] = true
		seats = append(seats, n)
	}

	if len(seats) == 0 {
		return nil, errors.New("no seats selected")
	}
	return seats, nil
}
