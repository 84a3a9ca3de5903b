// Package daylight tells how bright it is outside at a place on Earth. The map
// palette is dimmed with it, so a night session gets a dark city.
package daylight

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Phase is the part of the day a moment falls into.
type Phase int

const (
	Night Phase = iota
	Dawn
	Day
	Dusk
)

func (p Phase) String() string {
	switch p {
	case Dawn:
		return "dawn"
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	}
	return "night"
}

const (
	// Civil twilight ends when the sun is 6° below the horizon.
	twilightAlt = -6
	horizonAlt  = 0

	// MinShade keeps the darkest palette readable.
	MinShade = 0.35
)

// Sky describes the sun over one observer.
type Sky struct {
	Lat, Lon float64
	loc      *time.Location
}

// NewSky returns the sky over lat/lon whose local day follows timezone tz.
func NewSky(lat, lon float64, tz string) (*Sky, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &Sky{Lat: lat, Lon: lon, loc: loc}, nil
}

// events holds the twilight boundaries of one local day.
type events struct {
	dawn, sunrise, sunset, dusk time.Time
}

// day finds the events of the local day containing now. It reports false
// on polar days and nights when civil twilight never starts or ends.
func (s *Sky) day(now time.Time) (events, bool) {
	local := now.In(s.loc)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)

	var ev events
	var dawnOk, duskOk bool
	ev.dawn, dawnOk = s.crossing(date, twilightAlt, false)
	ev.sunrise, _ = s.crossing(date, horizonAlt, false)
	ev.sunset, _ = s.crossing(date, horizonAlt, true)
	ev.dusk, duskOk = s.crossing(date, twilightAlt, true)
	if !dawnOk || !duskOk || ev.dawn.After(ev.dusk) {
		return events{}, false
	}
	return ev, true
}

// Intensity returns ambient light intensity in [0, 1] at now.
func (s *Sky) Intensity(now time.Time) float64 {
	ev, ok := s.day(now)
	if !ok {
		if s.polarDay(now) {
			return 1
		}
		return 0
	}
	local := now.In(s.loc)
	switch {
	case local.Before(ev.dawn):
		return 0
	case local.Before(ev.sunrise):
		return interpolate(ev.dawn, ev.sunrise, local)
	case local.Before(ev.sunset):
		return 1
	case local.Before(ev.dusk):
		return 1 - interpolate(ev.sunset, ev.dusk, local)
	default:
		return 0
	}
}

// Phase returns the part of the day now falls into.
func (s *Sky) Phase(now time.Time) Phase {
	ev, ok := s.day(now)
	if !ok {
		if s.polarDay(now) {
			return Day
		}
		return Night
	}
	local := now.In(s.loc)
	switch {
	case local.Before(ev.dawn):
		return Night
	case local.Before(ev.sunrise):
		return Dawn
	case local.Before(ev.sunset):
		return Day
	case local.Before(ev.dusk):
		return Dusk
	default:
		return Night
	}
}

// polarDay reports whether the sun at local noon stays above civil twilight.
func (s *Sky) polarDay(now time.Time) bool {
	local := now.In(s.loc)
	noon := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, s.loc)
	return solarAltitude(noon.UTC(), s.Lat, s.Lon) > twilightAlt
}

// Shade maps a light intensity to a palette brightness factor in [MinShade, 1].
func Shade(intensity float64) float64 {
	intensity = max(0, min(1, intensity))
	return MinShade + (1-MinShade)*intensity
}

// Intensity is a shortcut for a one-off lookup. An unknown timezone is
// treated as night.
func Intensity(now time.Time, lat, lon float64, tz string) float64 {
	s, err := NewSky(lat, lon, tz)
	if err != nil {
		return 0
	}
	return s.Intensity(now)
}

// crossing bisects the local day for the moment the sun passes targetAlt,
// rising when afterNoon is false and setting otherwise.
func (s *Sky) crossing(date time.Time, targetAlt float64, afterNoon bool) (time.Time, bool) {
	start := date
	end := start.Add(24 * time.Hour)
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, s.loc)

	midnightAlt := solarAltitude(start.UTC(), s.Lat, s.Lon)
	noonAlt := solarAltitude(noon.UTC(), s.Lat, s.Lon)
	if (midnightAlt-targetAlt)*(noonAlt-targetAlt) > 0 {
		return time.Time{}, false
	}

	const epsilon = time.Minute
	for end.Sub(start) > epsilon {
		mid := start.Add(end.Sub(start) / 2)
		alt := solarAltitude(mid.UTC(), s.Lat, s.Lon)
		if (alt > targetAlt) == afterNoon {
			start = mid
		} else {
			end = mid
		}
	}
	return start.Round(time.Minute), true
}

// solarAltitude returns solar altitude in degrees for UTC time t, lat and lon.
func solarAltitude(t time.Time, lat, lon float64) float64 {
	jd := julian.TimeToJD(t)
	θ := sidereal.Apparent(jd).Rad() + lon*math.Pi/180
	ra, dec := solar.ApparentEquatorial(jd)
	H := math.Mod(θ-ra.Rad()+2*math.Pi, 2*math.Pi)
	φ := lat * math.Pi / 180
	δ := dec.Rad()
	sinAlt := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(H)
	return math.Asin(sinAlt) * 180 / math.Pi
}

// interpolate linear from 0 to 1 between start and end times
func interpolate(start, end, current time.Time) float64 {
	if !end.After(start) {
		return 1
	}
	total := end.Sub(start).Seconds()
	elapsed := current.Sub(start).Seconds()
	return max(0, min(1, elapsed/total))
}
