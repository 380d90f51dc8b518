package weather

import (
	"fmt"
	"time"
)

// DefaultTimeLayout renders sunrise and sunset on a 12-hour clock without
// an AM/PM marker.
const DefaultTimeLayout = "2006-01-02 03:04:05"

const (
	msgTemperature   = "Temperature data not available"
	msgWindSpeed     = "Wind speed data is not available"
	msgHumidity      = "Humidity data is not available"
	msgDescription   = "Weather description is not available"
	msgSunriseSunset = "Sunrise and sunset data is not available"
	msgVisibility    = "Visibility data is not available"
	msgPressure      = "Pressure data is not available"
	msgLocation      = "Location data is not available"
)

type field struct {
	key  string
	path string
}

// extract converts a nil snapshot or any lookup failure into the error form.
func extract(s *Snapshot, message string, fn func(*Snapshot) (Result, error)) Result {
	if s == nil {
		return ErrorResult(message)
	}

	result, err := fn(s)
	if err != nil {
		return ErrorResult(fmt.Sprintf("%s: %v", message, err))
	}
	return result
}

func numbers(fields ...field) func(*Snapshot) (Result, error) {
	return func(s *Snapshot) (Result, error) {
		result := make(Result, len(fields))
		for _, f := range fields {
			value, err := s.Float(f.path)
			if err != nil {
				return nil, err
			}
			result[f.key] = value
		}
		return result, nil
	}
}

func texts(fields ...field) func(*Snapshot) (Result, error) {
	return func(s *Snapshot) (Result, error) {
		result := make(Result, len(fields))
		for _, f := range fields {
			value, err := s.Text(f.path)
			if err != nil {
				return nil, err
			}
			result[f.key] = value
		}
		return result, nil
	}
}

// Temperature reports main.temp, main.feels_like, main.temp_min and main.temp_max.
func Temperature(s *Snapshot) Result {
	return extract(s, msgTemperature, numbers(
		field{"temperature", "main.temp"},
		field{"feels_like", "main.feels_like"},
		field{"temp_min", "main.temp_min"},
		field{"temp_max", "main.temp_max"},
	))
}

// WindSpeed reports wind.speed.
func WindSpeed(s *Snapshot) Result {
	return extract(s, msgWindSpeed, numbers(field{"wind_speed", "wind.speed"}))
}

// Humidity reports main.humidity.
func Humidity(s *Snapshot) Result {
	return extract(s, msgHumidity, numbers(field{"humidity", "main.humidity"}))
}

// WeatherDescription reports weather.0.main and weather.0.description.
func WeatherDescription(s *Snapshot) Result {
	return extract(s, msgDescription, texts(
		field{"main", "weather.0.main"},
		field{"weather_description", "weather.0.description"},
	))
}

// SunriseSunset renders sys.sunrise and sys.sunset with DefaultTimeLayout.
func SunriseSunset(s *Snapshot) Result {
	return SunriseSunsetLayout(s, DefaultTimeLayout)
}

// SunriseSunsetLayout renders sys.sunrise and sys.sunset in the city's
// fixed UTC offset (timezone, in seconds) using the given layout.
func SunriseSunsetLayout(s *Snapshot, layout string) Result {
	return extract(s, msgSunriseSunset, func(s *Snapshot) (Result, error) {
		sunrise, err := s.Float("sys.sunrise")
		if err != nil {
			return nil, err
		}
		sunset, err := s.Float("sys.sunset")
		if err != nil {
			return nil, err
		}
		offset, err := s.Float("timezone")
		if err != nil {
			return nil, err
		}

		zone := time.FixedZone("", int(offset))
		return Result{
			"sunrise_time": time.Unix(int64(sunrise), 0).In(zone).Format(layout),
			"sunset_time":  time.Unix(int64(sunset), 0).In(zone).Format(layout),
		}, nil
	})
}

// Visibility reports visibility in kilometres; the provider sends metres.
func Visibility(s *Snapshot) Result {
	return extract(s, msgVisibility, func(s *Snapshot) (Result, error) {
		meters, err := s.Float("visibility")
		if err != nil {
			return nil, err
		}
		return Result{"visibility": meters / 1000}, nil
	})
}

// Pressure reports main.pressure.
func Pressure(s *Snapshot) Result {
	return extract(s, msgPressure, numbers(field{"pressure", "main.pressure"}))
}

// LocationInfo reports the top-level name and sys.country.
func LocationInfo(s *Snapshot) Result {
	return extract(s, msgLocation, texts(
		field{"name", "name"},
		field{"country", "sys.country"},
	))
}
