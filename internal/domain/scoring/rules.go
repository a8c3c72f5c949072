package scoring

import (
	"fmt"
	"math"
)

// Type selects a league's reception scoring variant.
type Type string

const (
	TypePPR      Type = "PPR"
	TypeHalfPPR  Type = "Half-PPR"
	TypeStandard Type = "Standard"
)

func (t Type) Valid() bool {
	switch t {
	case TypePPR, TypeHalfPPR, TypeStandard:
		return true
	default:
		return false
	}
}

// StatLine is the raw weekly counting stats a performance is scored from.
type StatLine struct {
	PassingYards        int
	PassingTouchdowns   int
	Interceptions       int
	RushingYards        int
	RushingTouchdowns   int
	Receptions          int
	ReceivingYards      int
	ReceivingTouchdowns int
	FumblesLost         int
	TwoPointConversions int
}

// Ruleset maps a stat line to fantasy points.
type Ruleset struct {
	PointsPerPassingYard   float64
	PointsPerPassingTD     float64
	PointsPerInterception  float64
	PointsPerRushingYard   float64
	PointsPerRushingTD     float64
	PointsPerReception     float64
	PointsPerReceivingYard float64
	PointsPerReceivingTD   float64
	PointsPerFumbleLost    float64
	PointsPerTwoPointConv  float64
}

// DefaultRules returns the SWC league scoring ruleset for a scoring type.
// The base is full PPR; Half-PPR and Standard only change the reception value.
func DefaultRules(t Type) (Ruleset, error) {
	rules := Ruleset{
		PointsPerPassingYard:   1.0 / 25.0,
		PointsPerPassingTD:     4,
		PointsPerInterception:  -2,
		PointsPerRushingYard:   1.0 / 10.0,
		PointsPerRushingTD:     6,
		PointsPerReception:     1,
		PointsPerReceivingYard: 1.0 / 10.0,
		PointsPerReceivingTD:   6,
		PointsPerFumbleLost:    -2,
		PointsPerTwoPointConv:  2,
	}

	switch t {
	case TypePPR:
	case TypeHalfPPR:
		rules.PointsPerReception = 0.5
	case TypeStandard:
		rules.PointsPerReception = 0
	default:
		return Ruleset{}, fmt.Errorf("unknown scoring type: %s", t)
	}

	return rules, nil
}

// Score applies the ruleset to a stat line, rounded to two decimals.
func (r Ruleset) Score(line StatLine) float64 {
	total := 0.0
	total += float64(line.PassingYards) * r.PointsPerPassingYard
	total += float64(line.PassingTouchdowns) * r.PointsPerPassingTD
	total += float64(line.Interceptions) * r.PointsPerInterception
	total += float64(line.RushingYards) * r.PointsPerRushingYard
	total += float64(line.RushingTouchdowns) * r.PointsPerRushingTD
	total += float64(line.Receptions) * r.PointsPerReception
	total += float64(line.ReceivingYards) * r.PointsPerReceivingYard
	total += float64(line.ReceivingTouchdowns) * r.PointsPerReceivingTD
	total += float64(line.FumblesLost) * r.PointsPerFumbleLost
	total += float64(line.TwoPointConversions) * r.PointsPerTwoPointConv

	return math.Round(total*100) / 100
}
