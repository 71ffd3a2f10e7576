package kepler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OMM is one CCSDS Orbit Mean-elements Message in the JSON form published by
// space-track.org and CelesTrak. Angles are in degrees.
type OMM struct {
	ObjectName         string  `json:"OBJECT_NAME"`
	ObjectID           string  `json:"OBJECT_ID"`
	Epoch              string  `json:"EPOCH"`
	MeanMotion         float64 `json:"MEAN_MOTION"` // rev/day
	Eccentricity       float64 `json:"ECCENTRICITY"`
	Inclination        float64 `json:"INCLINATION"`
	RAOfAscNode        float64 `json:"RA_OF_ASC_NODE"`
	ArgOfPericenter    float64 `json:"ARG_OF_PERICENTER"`
	MeanAnomaly        float64 `json:"MEAN_ANOMALY"`
	EphemerisType      int     `json:"EPHEMERIS_TYPE"`
	ClassificationType string  `json:"CLASSIFICATION_TYPE"`
	NoradCatID         int     `json:"NORAD_CAT_ID"`
	ElementSetNo       int     `json:"ELEMENT_SET_NO"`
	RevAtEpoch         int     `json:"REV_AT_EPOCH"`
	BStar              float64 `json:"BSTAR"`
	MeanMotionDot      float64 `json:"MEAN_MOTION_DOT"`
	MeanMotionDDot     float64 `json:"MEAN_MOTION_DDOT"`

	CenterName string `json:"CENTER_NAME,omitempty"`
	RefFrame   string `json:"REF_FRAME,omitempty"`
	TimeSystem string `json:"TIME_SYSTEM,omitempty"`
}

// ParseOMMs decodes a JSON array of OMM objects.
func ParseOMMs(data []byte) ([]OMM, error) {
	var omms []OMM
	if err := json.Unmarshal(data, &omms); err != nil {
		return nil, fmt.Errorf("%w: decoding OMM JSON: %w", ErrInvalidElementSet, err)
	}
	return omms, nil
}

// ommEpochLayouts lists the accepted EPOCH formats. Values without a zone
// are UTC.
var ommEpochLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// EpochTime parses the EPOCH field.
func (o *OMM) EpochTime() (time.Time, error) {
	s := strings.TrimSpace(o.Epoch)
	for _, layout := range ommEpochLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized OMM epoch %q", ErrInvalidElementSet, o.Epoch)
}

// ToTLE maps the message onto the TLE field layout.
func (o *OMM) ToTLE() (*TLE, error) {
	epoch, err := o.EpochTime()
	if err != nil {
		return nil, err
	}
	intl, err := internationalDesignator(o.ObjectID)
	if err != nil {
		return nil, err
	}

	class := 'U'
	if o.ClassificationType != "" {
		class = rune(o.ClassificationType[0])
	}

	startOfYear := time.Date(epoch.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return &TLE{
		Name:             o.ObjectName,
		SatelliteNumber:  o.NoradCatID,
		Classification:   class,
		International:    intl,
		EpochYear:        epoch.Year(),
		EpochDay:         1 + float64(epoch.Sub(startOfYear).Nanoseconds())/(secondsPerDay*1e9),
		MeanMotionDot:    o.MeanMotionDot,
		MeanMotionDDot:   o.MeanMotionDDot,
		Bstar:            o.BStar,
		ElementNumber:    o.ElementSetNo,
		Inclination:      o.Inclination,
		RAAN:             o.RAOfAscNode,
		Eccentricity:     o.Eccentricity,
		ArgOfPerigee:     o.ArgOfPericenter,
		MeanAnomaly:      o.MeanAnomaly,
		MeanMotion:       o.MeanMotion,
		RevolutionNumber: o.RevAtEpoch,
	}, nil
}

// Elements converts the message to two-body Elements around the Earth.
func (o *OMM) Elements() (Elements, error) {
	tle, err := o.ToTLE()
	if err != nil {
		return Elements{}, err
	}
	el, err := tle.Elements()
	if err != nil {
		return Elements{}, err
	}
	// Keep the exact epoch rather than the day-of-year round trip.
	el.Epoch, _ = o.EpochTime()
	return el, nil
}

// internationalDesignator turns an OBJECT_ID like "1998-067A" into "98067A".
func internationalDesignator(objectID string) (string, error) {
	year, piece, ok := strings.Cut(objectID, "-")
	if !ok || len(year) != 4 || len(piece) < 4 {
		return "", fmt.Errorf("%w: OBJECT_ID %q is not YYYY-NNNP", ErrInvalidElementSet, objectID)
	}
	return year[2:] + piece, nil
}
