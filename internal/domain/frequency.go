package domain

// Frequency enumerates the supported payment and compounding cadences.
type Frequency string

const (
	Daily        Frequency = "daily"
	Weekly       Frequency = "weekly"
	Biweekly     Frequency = "biweekly"
	Monthly      Frequency = "monthly"
	Quarterly    Frequency = "quarterly"
	Semiannually Frequency = "semiannually"
	Annually     Frequency = "annually"
)

// DefaultPeriodsPerYear is used when a frequency tag is not recognized,
// so malformed persisted data degrades to monthly instead of breaking math.
const DefaultPeriodsPerYear = 12

// Daily uses a 360-day banking year, not 365.
var periodsPerYear = map[Frequency]int{
	Daily:        360,
	Weekly:       52,
	Biweekly:     26,
	Monthly:      12,
	Quarterly:    4,
	Semiannually: 2,
	Annually:     1,
}

// PeriodsPerYear returns how many periods of this frequency fit in a year.
// Unknown tags fall back to DefaultPeriodsPerYear.
func (f Frequency) PeriodsPerYear() int {
	if p, ok := periodsPerYear[f]; ok {
		return p
	}
	return DefaultPeriodsPerYear
}

// Valid reports whether f is one of the enumerated frequency tags.
func (f Frequency) Valid() bool {
	_, ok := periodsPerYear[f]
	return ok
}

// Frequencies returns the enumerated tags from shortest to longest cadence.
func Frequencies() []Frequency {
	return []Frequency{Daily, Weekly, Biweekly, Monthly, Quarterly, Semiannually, Annually}
}
