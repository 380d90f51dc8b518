package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const londonPayload = `{
	"coord": {"lon": -0.1257, "lat": 51.5085},
	"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}],
	"main": {"temp": 14.2, "feels_like": 13.6, "temp_min": 12.9, "temp_max": 15.4, "pressure": 1012, "humidity": 76},
	"visibility": 10000,
	"wind": {"speed": 4.63, "deg": 240},
	"dt": 1697620800,
	"sys": {"country": "GB", "sunrise": 1697610665, "sunset": 1697648585},
	"timezone": 3600,
	"name": "London",
	"cod": 200
}`

func londonSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s, err := ParseSnapshot([]byte(londonPayload))
	require.NoError(t, err)
	return s
}

func TestExtractorsOnWellFormedSnapshot(t *testing.T) {
	s := londonSnapshot(t)

	assert.Equal(t, Result{
		"temperature": 14.2,
		"feels_like":  13.6,
		"temp_min":    12.9,
		"temp_max":    15.4,
	}, Temperature(s))
	assert.Equal(t, Result{"wind_speed": 4.63}, WindSpeed(s))
	assert.Equal(t, Result{"humidity": 76.0}, Humidity(s))
	assert.Equal(t, Result{"main": "Clouds", "weather_description": "broken clouds"}, WeatherDescription(s))
	assert.Equal(t, Result{"visibility": 10.0}, Visibility(s))
	assert.Equal(t, Result{"pressure": 1012.0}, Pressure(s))
	assert.Equal(t, Result{"name": "London", "country": "GB"}, LocationInfo(s))
	assert.Equal(t, Result{
		"sunrise_time": "2023-10-18 07:31:05",
		"sunset_time":  "2023-10-18 06:03:05",
	}, SunriseSunset(s))
}

func TestExtractorsWithoutSnapshot(t *testing.T) {
	cases := map[string]struct {
		extract func(*Snapshot) Result
		message string
	}{
		"temperature":         {Temperature, "Temperature data not available"},
		"wind_speed":          {WindSpeed, "Wind speed data is not available"},
		"humidity":            {Humidity, "Humidity data is not available"},
		"weather_description": {WeatherDescription, "Weather description is not available"},
		"sunrise_sunset":      {SunriseSunset, "Sunrise and sunset data is not available"},
		"visibility":          {Visibility, "Visibility data is not available"},
		"pressure":            {Pressure, "Pressure data is not available"},
		"location_info":       {LocationInfo, "Location data is not available"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := tc.extract(nil)
			assert.Equal(t, ErrorResult(tc.message), result)
			assert.True(t, result.IsError())
			assert.Nil(t, result["data"])
		})
	}
}

func TestExtractorsReportMissingField(t *testing.T) {
	s := NewSnapshot(map[string]interface{}{
		"main":    map[string]interface{}{"temp": 10.0},
		"weather": []interface{}{},
		"sys":     map[string]interface{}{"sunrise": 0.0},
	})

	temp := Temperature(s)
	require.True(t, temp.IsError())
	assert.Equal(t, "Temperature data not available: missing field main.feels_like", temp["message"])

	desc := WeatherDescription(s)
	require.True(t, desc.IsError())
	assert.Equal(t, "Weather description is not available: missing field weather.0.main", desc["message"])

	sun := SunriseSunset(s)
	require.True(t, sun.IsError())
	assert.Contains(t, sun["message"], "sys.sunset")

	assert.True(t, WindSpeed(s).IsError())
	assert.True(t, Visibility(s).IsError())
	assert.True(t, LocationInfo(s).IsError())
}

func TestExtractorsReportWrongType(t *testing.T) {
	s := NewSnapshot(map[string]interface{}{
		"visibility": "far",
		"name":       42.0,
		"sys":        map[string]interface{}{"country": "FR"},
	})

	vis := Visibility(s)
	require.True(t, vis.IsError())
	assert.Equal(t, "Visibility data is not available: field visibility: expected number, got string", vis["message"])

	loc := LocationInfo(s)
	require.True(t, loc.IsError())
	assert.Contains(t, loc["message"], "expected string")
}

func TestSunriseSunsetEpochAtUTC(t *testing.T) {
	s := NewSnapshot(map[string]interface{}{
		"timezone": 0.0,
		"sys":      map[string]interface{}{"sunrise": 0.0, "sunset": 43200.0},
	})

	assert.Equal(t, Result{
		"sunrise_time": "1970-01-01 12:00:00",
		"sunset_time":  "1970-01-01 12:00:00",
	}, SunriseSunset(s))

	assert.Equal(t, Result{
		"sunrise_time": "1970-01-01 00:00:00",
		"sunset_time":  "1970-01-01 12:00:00",
	}, SunriseSunsetLayout(s, "2006-01-02 15:04:05"))
}

func TestSunriseSunsetNegativeOffset(t *testing.T) {
	s := NewSnapshot(map[string]interface{}{
		"timezone": -18000.0,
		"sys":      map[string]interface{}{"sunrise": 0.0, "sunset": 3600.0},
	})

	assert.Equal(t, Result{
		"sunrise_time": "1969-12-31 19:00:00",
		"sunset_time":  "1969-12-31 20:00:00",
	}, SunriseSunsetLayout(s, "2006-01-02 15:04:05"))
}

func TestVisibilityIsNotRounded(t *testing.T) {
	s := NewSnapshot(map[string]interface{}{"visibility": 1234.0})
	assert.Equal(t, Result{"visibility": 1.234}, Visibility(s))
}

func TestExtractorsAreDeterministic(t *testing.T) {
	s := londonSnapshot(t)
	catalog := NewCatalog("")

	first := catalog.Report(s)
	second := catalog.Report(s)
	assert.Equal(t, first, second)
}

func TestParseSnapshotRejectsNonObjects(t *testing.T) {
	for _, body := range []string{"", "null", "[]", "42", "{"} {
		_, err := ParseSnapshot([]byte(body))
		assert.Error(t, err, "body %q", body)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := londonSnapshot(t)

	value, err := s.Lookup("weather.0.description")
	require.NoError(t, err)
	assert.Equal(t, "broken clouds", value)

	_, err = s.Lookup("weather.1.description")
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "weather.1.description", missing.Path)

	_, err = s.Lookup("main.temp.celsius")
	assert.ErrorAs(t, err, &missing)

	var nilSnapshot *Snapshot
	_, err = nilSnapshot.Lookup("main")
	assert.ErrorAs(t, err, &missing)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, `{"data":null,"message":"Data","status":"error"}`, ErrorResult("Data").String())
	assert.Equal(t, `{"visibility":10}`, Result{"visibility": 10.0}.String())
}
