package entities

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type Location struct {
	Lat float64
	Lon float64
}

func (l Location) IsValid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

func (l Location) Point() orb.Point {
	return orb.Point{l.Lon, l.Lat}
}

// DistanceKm - расстояние по большому кругу.
func (l Location) DistanceKm(other Location) float64 {
	return geo.DistanceHaversine(l.Point(), other.Point()) / 1000
}

// BoundAround возвращает прямоугольник, описанный вокруг круга радиусом radiusKm.
func (l Location) BoundAround(radiusKm float64) orb.Bound {
	return geo.NewBoundAroundPoint(l.Point(), radiusKm*1000)
}
