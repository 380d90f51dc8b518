package weather

// Extractor names one accessor. Name is the machine key used in reports
// and URLs, Label is what the CLI prints.
type Extractor struct {
	Name    string
	Label   string
	Extract func(*Snapshot) Result
}

// Catalog is the ordered set of accessors.
type Catalog []Extractor

// NewCatalog returns all eight accessors in display order. An empty layout
// keeps DefaultTimeLayout.
func NewCatalog(timeLayout string) Catalog {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}

	return Catalog{
		{Name: "temperature", Label: "Temperature", Extract: Temperature},
		{Name: "wind_speed", Label: "Wind Speed", Extract: WindSpeed},
		{Name: "humidity", Label: "Humidity", Extract: Humidity},
		{Name: "weather_description", Label: "Weather Description", Extract: WeatherDescription},
		{Name: "sunrise_sunset", Label: "Sunrise & Sunset", Extract: func(s *Snapshot) Result {
			return SunriseSunsetLayout(s, timeLayout)
		}},
		{Name: "visibility", Label: "Visibility", Extract: Visibility},
		{Name: "pressure", Label: "Pressure", Extract: Pressure},
		{Name: "location_info", Label: "Location Info", Extract: LocationInfo},
	}
}

func (c Catalog) Find(name string) (Extractor, bool) {
	for _, e := range c {
		if e.Name == name {
			return e, true
		}
	}
	return Extractor{}, false
}

func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, e := range c {
		names = append(names, e.Name)
	}
	return names
}

// Report runs every accessor against s, keyed by Name.
func (c Catalog) Report(s *Snapshot) map[string]Result {
	report := make(map[string]Result, len(c))
	for _, e := range c {
		report[e.Name] = e.Extract(s)
	}
	return report
}
