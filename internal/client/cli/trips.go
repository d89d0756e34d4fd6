package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/avillagran/boletera/internal/client/models"
)

// Search prompts for the trip filters (all optional, empty skips a filter)
// and prints the matching departures.
func (a *App) Search(ctx context.Context) error {
	origin, err := getSimpleText(a.reader, "Origin (empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	destination, err := getSimpleText(a.reader, "Destination (empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Date YYYY-MM-DD (empty for any)", os.Stdout)
	if err != nil {
		return err
	}
	minPrice, err := a.getOptionalPrice("Min price (empty for none)")
	if err != nil {
		return err
	}
	maxPrice, err := a.getOptionalPrice("Max price (empty for none)")
	if err != nil {
		return err
	}

	trips, err := a.trips.Search(ctx, models.TripSearchParams{
		Origin:      origin,
		Destination: destination,
		Date:        date,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
	})
	if err != nil {
		return err
	}

	if len(trips) == 0 {
		printlnFn("No trips found.")
		return nil
	}

	for _, t := range trips {
		line := fmt.Sprintf("#%d %s → %s  %s %s  $%.2f  %d seats free",
			t.ID, t.Origin.Name, t.Destination.Name, t.Date, t.DepartureTime,
			t.Price, t.AvailableSeats)
		if t.SalesClosed {
			line += "  [sales closed]"
		}
		printlnFn(line)
	}
	return nil
}

// Locations prints every location the backend currently sells trips for.
func (a *App) Locations(ctx context.Context) error {
	locations, err := a.trips.Locations(ctx)
	if err != nil {
		return err
	}

	if len(locations) == 0 {
		printlnFn("No locations available.")
		return nil
	}
	for _, l := range locations {
		printlnFn(fmt.Sprintf("%s (%s)", l.Name, l.Department))
	}
	return nil
}

// TripDetails prints the seat map of the trip with the given id.
func (a *App) TripDetails(ctx context.Context, arg string) error {
	tripID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return errors.New("trip id must be a number")
	}

	seats, err := a.trips.SeatDetails(ctx, tripID)
	if err != nil {
		return err
	}

	printSeatMap(seats)
	return nil
}

func printSeatMap(m *models.SeatMap) {
	printlnFn(fmt.Sprintf("Trip #%d %s → %s  %s %s  $%.2f",
		m.TripID, m.Origin, m.Destination, m.Date, m.DepartureTime, m.Price))
	printlnFn(fmt.Sprintf("Seats: %d total, %d occupied, %d available",
		m.Capacity, len(m.Occupied), len(m.Available())))

	row := ""
	for seat := 1; seat <= m.Capacity; seat++ {
		mark := fmt.Sprintf("[%2d]", seat)
		if m.IsOccupied(seat) {
			mark = "[ X]"
		}
		row += mark + " "
		if seat%4 == 0 || seat == m.Capacity {
			printlnFn(row)
			row = ""
		}
	}
}

func (a *App) getOptionalPrice(prompt string) (float64, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("price must be a number")
	}
	return v, nil
}
