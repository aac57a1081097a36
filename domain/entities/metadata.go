package entities

// Metadata this struct contains extra information about the trip table being explored
// + City: city which belongs the data
// + Source: path of the file the data was loaded from
// + Month: month selector applied to the data, "all" when unfiltered
// + Day: day of week selector applied to the data, "all" when unfiltered
type Metadata struct {
	City   string `json:"city"`
	Source string `json:"source"`
	Month  string `json:"month"`
	Day    string `json:"day"`
}

func NewMetadata(city string, source string, month string, day string) Metadata {
	return Metadata{
		City:   city,
		Source: source,
		Month:  month,
		Day:    day,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetSource() string {
	return m.Source
}

func (m Metadata) GetMonth() string {
	return m.Month
}

func (m Metadata) GetDay() string {
	return m.Day
}

// WithSelectors returns a copy of the metadata with the given selectors
func (m Metadata) WithSelectors(month string, day string) Metadata {
	m.Month = month
	m.Day = day
	return m
}
