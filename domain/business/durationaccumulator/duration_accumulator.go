package durationaccumulator

const (
	secondsPerMinute = 60.0
	secondsPerHour   = 3600.0
)

// DurationAccumulator struct that collects the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations of trips, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetAverageDuration() float64 {
	if da.Counter == 0 {
		panic("[DurationAccumulator] cannot get average duration, counter is zero")
	}
	return da.TotalDuration / float64(da.Counter)
}

// ToMinutes converts seconds to minutes
func ToMinutes(seconds float64) float64 {
	return seconds / secondsPerMinute
}

// ToHours converts seconds to hours
func ToHours(seconds float64) float64 {
	return seconds / secondsPerHour
}
