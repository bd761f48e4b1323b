package cards

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RoundingRule string

const (
	RoundDown      RoundingRule = "round_down"
	RoundUp        RoundingRule = "round_up"
	RoundToNearest RoundingRule = "round_to_nearest"
)

// PointsConfig converts money into points.
type PointsConfig struct {
	pointsPerUnit              decimal.Decimal
	minimumPointsForRedemption int
	roundingRule               RoundingRule
	enrollmentBonusPoints      int
}

func NewPointsConfig(pointsPerUnit decimal.Decimal, minimumForRedemption int, rounding RoundingRule, enrollmentBonus int) (PointsConfig, error) {
	if !pointsPerUnit.IsPositive() {
		return PointsConfig{}, invalidArgument("points per unit", "must be positive")
	}
	if minimumForRedemption < 0 {
		return PointsConfig{}, invalidArgument("minimum points for redemption", "must not be negative")
	}
	switch rounding {
	case RoundDown, RoundUp, RoundToNearest:
	default:
		return PointsConfig{}, invalidArgument("rounding rule", fmt.Sprintf("%q is unknown", rounding))
	}
	if enrollmentBonus < 0 {
		return PointsConfig{}, invalidArgument("enrollment bonus", "must not be negative")
	}
	return PointsConfig{
		pointsPerUnit:              pointsPerUnit,
		minimumPointsForRedemption: minimumForRedemption,
		roundingRule:               rounding,
		enrollmentBonusPoints:      enrollmentBonus,
	}, nil
}

func (c PointsConfig) PointsPerUnit() decimal.Decimal { return c.pointsPerUnit }

func (c PointsConfig) MinimumPointsForRedemption() int { return c.minimumPointsForRedemption }

func (c PointsConfig) RoundingRule() RoundingRule { return c.roundingRule }

func (c PointsConfig) EnrollmentBonusPoints() int { return c.enrollmentBonusPoints }

// CalculatePoints returns amount × pointsPerUnit × multiplier rounded to a whole number.
// Tier lookup is up to the caller; pass decimal.NewFromInt(1) when there is none.
func (c PointsConfig) CalculatePoints(amount, multiplier decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, invalidArgument("amount", "must not be negative")
	}
	if !multiplier.IsPositive() {
		return decimal.Zero, invalidArgument("tier multiplier", "must be positive")
	}
	raw := amount.Mul(c.pointsPerUnit).Mul(multiplier)
	switch c.roundingRule {
	case RoundUp:
		return raw.Ceil(), nil
	case RoundToNearest:
		// half away from zero, which is half up for non-negative values
		return raw.Round(0), nil
	default:
		return raw.Floor(), nil
	}
}

// PointsConfigState is the persisted form of a PointsConfig.
type PointsConfigState struct {
	PointsPerUnit              decimal.Decimal
	MinimumPointsForRedemption int
	RoundingRule               RoundingRule
	EnrollmentBonusPoints      int
}

func (c PointsConfig) State() PointsConfigState {
	return PointsConfigState{
		PointsPerUnit:              c.pointsPerUnit,
		MinimumPointsForRedemption: c.minimumPointsForRedemption,
		RoundingRule:               c.roundingRule,
		EnrollmentBonusPoints:      c.enrollmentBonusPoints,
	}
}

func RehydratePointsConfig(s PointsConfigState) PointsConfig {
	return PointsConfig{
		pointsPerUnit:              s.PointsPerUnit,
		minimumPointsForRedemption: s.MinimumPointsForRedemption,
		roundingRule:               s.RoundingRule,
		enrollmentBonusPoints:      s.EnrollmentBonusPoints,
	}
}
