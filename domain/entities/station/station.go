package station

import "math"

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HasValidCoordinates there are stations without latitude or longitude, those are stored as 0 or NaN
func (sd StationData) HasValidCoordinates() bool {
	if math.IsNaN(sd.Latitude) || math.IsNaN(sd.Longitude) {
		return false
	}
	if sd.Latitude == 0 && sd.Longitude == 0 {
		return false
	}
	return -90 <= sd.Latitude && sd.Latitude <= 90 && -180 <= sd.Longitude && sd.Longitude <= 180
}

func (sd StationData) GetCoordinates() (float64, float64) {
	return sd.Latitude, sd.Longitude
}
