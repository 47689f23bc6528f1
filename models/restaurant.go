package models

// DayThreshold marks the start of the following day in the integer time encoding.
const DayThreshold = 2400

// RawRestaurant is a dataset record as stored on disk or in the restaurants collection.
type RawRestaurant struct {
	Name  string   `json:"name" yaml:"name" bson:"name"`
	Times []string `json:"times" yaml:"times" bson:"times"` // e.g. "Mon-Fri, Sat 11 am - 12:30 am"
}

// Restaurant is a loaded dataset entry with normalized hours.
type Restaurant struct {
	Name  string           `json:"name"`
	Hours []OperatingHours `json:"hours"`
}

// OperatingHours is one open window on a single day of the week.
type OperatingHours struct {
	DayIdx int `json:"dayIdx"` // 0-6 indicating Sun-Sat
	Start  int `json:"start"`  // hour*100 + minute
	End    int `json:"end"`    // a value >= 2400 runs into the following day
}

// TimeRange is the parsed time portion of a schedule string.
type TimeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
