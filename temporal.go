package kepler

// TemporalUnit is a canonical time unit symbol.
type TemporalUnit string

const (
	Second      TemporalUnit = "s"
	Millisecond TemporalUnit = "ms"
	Microsecond TemporalUnit = "μs"
	Nanosecond  TemporalUnit = "ns"
	Minute      TemporalUnit = "min"
	Hour        TemporalUnit = "h"
	Day         TemporalUnit = "d"
	Year        TemporalUnit = "yr" // Julian year, 365.25 d
	Kiloyear    TemporalUnit = "kyr"
	Megayear    TemporalUnit = "Myr"
	Gigayear    TemporalUnit = "Gyr"
)

var secondsPer = map[TemporalUnit]float64{
	Second:      1,
	Millisecond: 1e-3,
	Microsecond: 1e-6,
	Nanosecond:  1e-9,
	Minute:      60,
	Hour:        3600,
	Day:         secondsPerDay,
	Year:        julianYearSeconds,
	Kiloyear:    julianYearSeconds * 1e3,
	Megayear:    julianYearSeconds * 1e6,
	Gigayear:    julianYearSeconds * 1e9,
}

// ConvertTemporal converts value from one unit to another.
func ConvertTemporal(value float64, from, to TemporalUnit) (float64, error) {
	const fn = "ConvertTemporal"
	if err := requireFinite(fn, param{"value", value}); err != nil {
		return 0, err
	}
	src, ok := secondsPer[from]
	if !ok {
		return 0, &DomainError{Func: fn, Param: "from:" + string(from), Reason: ReasonUnknownUnit, Kind: ErrOutOfRange}
	}
	dst, ok := secondsPer[to]
	if !ok {
		return 0, &DomainError{Func: fn, Param: "to:" + string(to), Reason: ReasonUnknownUnit, Kind: ErrOutOfRange}
	}
	if from == to {
		return value, nil
	}
	return value * src / dst, nil
}
