package energy

// SeriesLength is the number of hourly points in every generated profile.
const SeriesLength = 24

// placeholderAQI is reported for every zone until a real air quality feed exists.
const placeholderAQI = 42

// EnergyPoint is one hourly sample of the synthetic profile.
type EnergyPoint struct {
	Hour   string   `json:"hour"`
	Carbon float64  `json:"carbon"`
	Price  float64  `json:"price"`
	Load   *float64 `json:"load"`
}

// ZoneResponse is the payload served for GET /api/energy/zone/{zoneId}.
type ZoneResponse struct {
	ZoneID           string        `json:"zoneId"`
	LoadKWh          float64       `json:"load_kwh"`
	CarbonIntensity  float64       `json:"carbon_intensity"`
	AQI              int           `json:"aqi"`
	PriceCentsPerKWh float64       `json:"price_cents_per_kwh"`
	Series           []EnergyPoint `json:"series"`
	CleanerHoursISO  []string      `json:"cleaner_hours_iso"`
}

// CleanerHour pairs a cleaner hour timestamp with its 12-hour clock label.
type CleanerHour struct {
	Hour  string `json:"hour"`
	Label string `json:"label"`
}

// CleanerHoursResponse is the payload served for the cleaner-hours listing.
type CleanerHoursResponse struct {
	ZoneID       string        `json:"zoneId"`
	CleanerHours []CleanerHour `json:"cleaner_hours"`
}

// Config wires runtime settings for the energy domain.
type Config struct {
	// Seed for the shared random source; zero seeds from the wall clock.
	Seed int64
}
