package utmconv

import (
	"github.com/golang/geo/s2"
	"github.com/rs/zerolog"
)

// Observer receives notifications at the start and end of each conversion.
// It replaces inline diagnostic printing inside the arithmetic: the
// algorithm itself never logs.
type Observer interface {
	ForwardStarted(geo s2.LatLng, zoneOverride int)
	ForwardFinished(utm UTMCoord, err error)
	InverseStarted(utm UTMCoord)
	InverseFinished(geo s2.LatLng, err error)
}

// LogObserver is an Observer that traces conversions through a zerolog
// logger at debug level.
type LogObserver struct {
	Log zerolog.Logger
}

func (o LogObserver) ForwardStarted(geo s2.LatLng, zoneOverride int) {
	o.Log.Debug().
		Float64("lat", geo.Lat.Degrees()).
		Float64("lng", geo.Lng.Degrees()).
		Int("zone_override", zoneOverride).
		Msg("Geographic to UTM conversion started")
}

func (o LogObserver) ForwardFinished(utm UTMCoord, err error) {
	if err != nil {
		o.Log.Debug().Err(err).Msg("Geographic to UTM conversion failed")
		return
	}
	o.Log.Debug().
		Int("zone", utm.Zone).
		Stringer("hemisphere", utm.Hemisphere).
		Float64("easting", utm.Easting).
		Float64("northing", utm.Northing).
		Msg("Geographic to UTM conversion finished")
}

func (o LogObserver) InverseStarted(utm UTMCoord) {
	o.Log.Debug().
		Int("zone", utm.Zone).
		Stringer("hemisphere", utm.Hemisphere).
		Float64("easting", utm.Easting).
		Float64("northing", utm.Northing).
		Msg("UTM to geographic conversion started")
}

func (o LogObserver) InverseFinished(geo s2.LatLng, err error) {
	if err != nil {
		o.Log.Debug().Err(err).Msg("UTM to geographic conversion failed")
		return
	}
	o.Log.Debug().
		Float64("lat", geo.Lat.Degrees()).
		Float64("lng", geo.Lng.Degrees()).
		Msg("UTM to geographic conversion finished")
}
