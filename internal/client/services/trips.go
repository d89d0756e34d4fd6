package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/avillagran/boletera/internal/client/models"
)

// TripsService wraps the trip-search surface of the backend. All of its
// endpoints require authentication.
type TripsService interface {
	// Search returns the trips matching the given filters; unset filters
	// are omitted from the query.
	Search(ctx context.Context, params models.TripSearchParams) ([]models.Trip, error)

	// SeatDetails returns the seat occupancy of one trip.
	SeatDetails(ctx context.Context, tripID int64) (*models.SeatMap, error)

	// Locations returns every location trips are currently sold between.
	Locations(ctx context.Context) ([]models.Location, error)
}

type tripsService struct {
	api API
}

func NewTripsService(api API) TripsService {
	return &tripsService{api: api}
}

func (s *tripsService) Search(ctx context.Context, params models.TripSearchParams) ([]models.Trip, error) {
	q := url.Values{}
	if params.Origin != "" {
		q.Set("origenNombre", params.Origin)
	}
	if params.Destination != "" {
		q.Set("destinoNombre", params.Destination)
	}
	if params.Date != "" {
		q.Set("fecha", params.Date)
	}
	if params.MinPrice > 0 {
		q.Set("precioMinimo", strconv.FormatFloat(params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice > 0 {
		q.Set("precioMaximo", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}

	var trips []models.Trip
	path := "/api/vendedor/viajes/buscar-disponibles?" + q.Encode()
	if err := s.api.Get(ctx, path, true, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// SeatDetails parses the loosely-typed detalles-asientos response. The body
// has no fixed schema: the trip summary arrives either nested under "viaje"
// or at the top level, with the occupied seat numbers alongside.
func (s *tripsService) SeatDetails(ctx context.Context, tripID int64) (*models.SeatMap, error) {
	path := fmt.Sprintf("/api/vendedor/viajes/%d/detalles-asientos", tripID)
	raw, err := s.api.GetRaw(ctx, path, true)
	if err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(raw)
	trip := root.Get("viaje")
	if !trip.Exists() {
		trip = root
	}

	m := &models.SeatMap{
		TripID:        trip.Get("id").Int(),
		Origin:        trip.Get("origen.nombre").String(),
		Destination:   trip.Get("destino.nombre").String(),
		Date:          trip.Get("fecha").String(),
		DepartureTime: trip.Get("horaSalida").String(),
		Price:         trip.Get("precio").Float(),
		Capacity:      int(trip.Get("omnibus.capacidad").Int()),
	}
	if m.TripID == 0 {
		m.TripID = tripID
	}

	for _, seat := range root.Get("asientosOcupados").Array() {
		m.Occupied = append(m.Occupied, int(seat.Int()))
	}

	return m, nil
}

func (s *tripsService) Locations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.api.Get(ctx, "/api/vendedor/localidades-disponibles", true, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}
