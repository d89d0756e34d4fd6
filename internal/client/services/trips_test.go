package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avillagran/boletera/internal/client/models"
)

func TestSearch_BuildsQueryFromSetFilters(t *testing.T) {
	path := "/api/vendedor/viajes/buscar-disponibles?destinoNombre=Salto&fecha=2026-03-01&origenNombre=Montevideo&precioMaximo=900&precioMinimo=100"
	fa := &fakeAPI{responses: map[string]string{
		path: `[{"id":3,"origen":{"id":1,"nombre":"Montevideo","departamento":"Montevideo"},
			"destino":{"id":2,"nombre":"Salto","departamento":"Salto"},
			"fecha":"2026-03-01","horaSalida":"08:00:00","horaLlegada":"14:00:00",
			"precio":850.5,"omnibus":{"id":4,"matricula":"ABC1234","modelo":"Marcopolo","capacidad":45},
			"asientosDisponibles":12,"asientosOcupados":33,"ventasCerradas":false}]`,
	}}
	svc := NewTripsService(fa)

	trips, err := svc.Search(context.Background(), models.TripSearchParams{
		Origin:      "Montevideo",
		Destination: "Salto",
		Date:        "2026-03-01",
		MinPrice:    100,
		MaxPrice:    900,
	})
	require.NoError(t, err)
	require.Len(t, trips, 1)

	call := fa.lastCall()
	assert.Equal(t, path, call.path)
	assert.True(t, call.includeAuth)

	assert.Equal(t, int64(3), trips[0].ID)
	assert.Equal(t, "Montevideo", trips[0].Origin.Name)
	assert.Equal(t, 850.5, trips[0].Price)
	assert.Equal(t, 45, trips[0].Bus.Capacity)
}

func TestSearch_OmitsUnsetFilters(t *testing.T) {
	path := "/api/vendedor/viajes/buscar-disponibles?origenNombre=Montevideo"
	fa := &fakeAPI{responses: map[string]string{path: `[]`}}
	svc := NewTripsService(fa)

	trips, err := svc.Search(context.Background(), models.TripSearchParams{Origin: "Montevideo"})
	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.Equal(t, path, fa.lastCall().path)
}

func TestSeatDetails_ParsesNestedShape(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/vendedor/viajes/3/detalles-asientos": `{
			"viaje":{"id":3,"origen":{"nombre":"Montevideo"},"destino":{"nombre":"Salto"},
				"fecha":"2026-03-01","horaSalida":"08:00:00","precio":850.5,
				"omnibus":{"capacidad":5}},
			"asientosOcupados":[2,4]
		}`,
	}}
	svc := NewTripsService(fa)

	m, err := svc.SeatDetails(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), m.TripID)
	assert.Equal(t, "Montevideo", m.Origin)
	assert.Equal(t, "Salto", m.Destination)
	assert.Equal(t, 5, m.Capacity)
	assert.Equal(t, []int{2, 4}, m.Occupied)
	assert.Equal(t, []int{1, 3, 5}, m.Available())
	assert.True(t, m.IsOccupied(4))
	assert.False(t, m.IsOccupied(1))
}

func TestSeatDetails_ParsesFlatShape(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/vendedor/viajes/9/detalles-asientos": `{
			"id":9,"origen":{"nombre":"Colonia"},"destino":{"nombre":"Rivera"},
			"fecha":"2026-04-02","horaSalida":"10:30:00","precio":500,
			"omnibus":{"capacidad":40},
			"asientosOcupados":[]
		}`,
	}}
	svc := NewTripsService(fa)

	m, err := svc.SeatDetails(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), m.TripID)
	assert.Equal(t, "Colonia", m.Origin)
	assert.Equal(t, 40, m.Capacity)
	assert.Empty(t, m.Occupied)
}

func TestLocations(t *testing.T) {
	fa := &fakeAPI{responses: map[string]string{
		"/api/vendedor/localidades-disponibles": `[
			{"id":1,"nombre":"Montevideo","departamento":"Montevideo"},
			{"id":2,"nombre":"Salto","departamento":"Salto"}
		]`,
	}}
	svc := NewTripsService(fa)

	locations, err := svc.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Salto", locations[1].Name)
	assert.True(t, fa.lastCall().includeAuth)
}
