package models

// Location is a city/terminal the backend sells trips between.
type Location struct {
	ID         int64  `json:"id"`
	Name       string `json:"nombre"`
	Department string `json:"departamento"`
}

// Bus describes the vehicle assigned to a trip.
type Bus struct {
	ID           int64  `json:"id"`
	LicensePlate string `json:"matricula"`
	Model        string `json:"modelo"`
	Capacity     int    `json:"capacidad"`
}

// Trip is one scheduled departure as returned by the search endpoint.
type Trip struct {
	ID             int64    `json:"id"`
	Origin         Location `json:"origen"`
	Destination    Location `json:"destino"`
	Date           string   `json:"fecha"`       // YYYY-MM-DD
	DepartureTime  string   `json:"horaSalida"`  // HH:MM:SS
	ArrivalTime    string   `json:"horaLlegada"` // HH:MM:SS
	Price          float64  `json:"precio"`
	Bus            Bus      `json:"omnibus"`
	AvailableSeats int      `json:"asientosDisponibles"`
	OccupiedSeats  int      `json:"asientosOcupados"`
	SalesClosed    bool     `json:"ventasCerradas"`
}

// TripSearchParams are the optional filters of the trip search endpoint.
// Zero values mean "not set" and are omitted from the query string.
type TripSearchParams struct {
	Origin      string  // origenNombre
	Destination string  // destinoNombre
	Date        string  // fecha, YYYY-MM-DD
	MinPrice    float64 // precioMinimo
	MaxPrice    float64 // precioMaximo
}

// SeatMap is the typed view of the seat-detail endpoint, whose response
// body is not part of any fixed schema. Occupied holds seat numbers already
// sold; every other number in [1, Capacity] is available.
type SeatMap struct {
	TripID        int64
	Origin        string
	Destination   string
	Date          string
	DepartureTime string
	Price         float64
	Capacity      int
	Occupied      []int
}

// IsOccupied reports whether the given seat number is already taken.
func (m *SeatMap) IsOccupied(seat int) bool {
	for _, s := range m.Occupied {
		if s == seat {
			return true
		}
	}
	return false
}

// Available returns the free seat numbers in ascending order.
func (m *SeatMap) Available() []int {
	free := make([]int, 0, m.Capacity-len(m.Occupied))
	for seat := 1; seat <= m.Capacity; seat++ {
		if !m.IsOccupied(seat) {
			free = append(free, seat)
		}
	}
	return free
}
