package distanceaccumulator

import (
	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/station"
)

// DistanceAccumulator struct that collects the straight-line distance of trips
// + Counter: counts the amount of trips collected
// + TotalDistance: sum of distances in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) GetAverageDistance() float64 {
	if da.Counter == 0 {
		panic("[DistanceAccumulator] cannot get average, counter is zero")
	}
	return da.TotalDistance / float64(da.Counter)
}

// CalculateDistance returns the distance in kilometers between two stations using haversine formula
func CalculateDistance(startStation station.StationData, endStation station.StationData) float64 {
	latStartStation, longStartStation := startStation.GetCoordinates()
	latEndStation, longEndStation := endStation.GetCoordinates()
	station1 := haversine.Coord{Lat: latStartStation, Lon: longStartStation}
	station2 := haversine.Coord{Lat: latEndStation, Lon: longEndStation}

	_, km := haversine.Distance(station1, station2)
	return km
}
