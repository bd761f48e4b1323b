package cards

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ProgramType string

const (
	ProgramStamp  ProgramType = "stamp"
	ProgramPoints ProgramType = "points"
)

func (t ProgramType) Valid() bool {
	return t == ProgramStamp || t == ProgramPoints
}

// ProgramRules are the rule parameters that can change over the life of a program.
// StampThreshold is used by stamp programs, PointsConversionRate by points programs.
type ProgramRules struct {
	Name                     string
	StampThreshold           int
	PointsConversionRate     decimal.Decimal
	DailyStampLimit          *int
	MinimumTransactionAmount *decimal.Decimal
	ExpirationPolicy         ExpirationPolicy
	// PointsConfig overrides the plain conversion rate when set.
	PointsConfig *PointsConfig
}

type ProgramParams struct {
	BrandID BrandID
	Type    ProgramType
	ProgramRules
}

// Program is the aggregate holding the rules of a loyalty scheme and its reward catalog.
type Program struct {
	id                       ProgramID
	brandID                  BrandID
	name                     string
	programType              ProgramType
	stampThreshold           *int
	pointsConversionRate     *decimal.Decimal
	dailyStampLimit          *int
	minimumTransactionAmount *decimal.Decimal
	expirationPolicy         ExpirationPolicy
	pointsConfig             *PointsConfig
	isActive                 bool
	createdAt                time.Time
	updatedAt                time.Time
	rewards                  []*Reward
	version                  int64
	clock                    Clock
}

func NewProgram(p ProgramParams, clock Clock) (*Program, error) {
	if p.BrandID.IsZero() {
		return nil, invalidArgument("brand id", "is required")
	}
	if !p.Type.Valid() {
		return nil, invalidArgument("program type", fmt.Sprintf("%q is unknown", p.Type))
	}
	clock = clockOrSystem(clock)
	now := clock.Now()
	program := &Program{
		id:          NewID[ProgramTag](),
		brandID:     p.BrandID,
		programType: p.Type,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
		clock:       clock,
	}
	if err := program.applyRules(p.ProgramRules); err != nil {
		return nil, err
	}
	return program, nil
}

// applyRules validates rules against the program type and only then assigns them.
func (p *Program) applyRules(r ProgramRules) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return invalidArgument("name", "is required")
	}
	if r.DailyStampLimit != nil && *r.DailyStampLimit <= 0 {
		return invalidArgument("daily stamp limit", "must be positive")
	}
	if r.MinimumTransactionAmount != nil && r.MinimumTransactionAmount.IsNegative() {
		return invalidArgument("minimum transaction amount", "must not be negative")
	}

	var (
		threshold *int
		rate      *decimal.Decimal
	)
	switch p.programType {
	case ProgramStamp:
		if r.StampThreshold <= 0 {
			return invalidArgument("stamp threshold", "must be positive for stamp programs")
		}
		if !r.PointsConversionRate.IsZero() || r.PointsConfig != nil {
			return invalidArgument("points conversion rate", "is not allowed for stamp programs")
		}
		threshold = &r.StampThreshold
	case ProgramPoints:
		if r.StampThreshold != 0 {
			return invalidArgument("stamp threshold", "is not allowed for points programs")
		}
		if r.DailyStampLimit != nil {
			return invalidArgument("daily stamp limit", "is not allowed for points programs")
		}
		value := r.PointsConversionRate
		if r.PointsConfig != nil {
			if !value.IsZero() && !value.Equal(r.PointsConfig.PointsPerUnit()) {
				return invalidArgument("points conversion rate", "differs from points config")
			}
			value = r.PointsConfig.PointsPerUnit()
		}
		if !value.IsPositive() {
			return invalidArgument("points conversion rate", "must be positive for points programs")
		}
		rate = &value
	}

	p.name = name
	p.stampThreshold = threshold
	p.pointsConversionRate = rate
	p.dailyStampLimit = copyPtr(r.DailyStampLimit)
	p.minimumTransactionAmount = copyPtr(r.MinimumTransactionAmount)
	p.expirationPolicy = r.ExpirationPolicy
	p.pointsConfig = copyPtr(r.PointsConfig)
	return nil
}

func (p *Program) ID() ProgramID { return p.id }

func (p *Program) BrandID() BrandID { return p.brandID }

func (p *Program) Name() string { return p.name }

func (p *Program) Type() ProgramType { return p.programType }

func (p *Program) StampThreshold() *int { return copyPtr(p.stampThreshold) }

func (p *Program) PointsConversionRate() *decimal.Decimal { return copyPtr(p.pointsConversionRate) }

func (p *Program) DailyStampLimit() *int { return copyPtr(p.dailyStampLimit) }

func (p *Program) MinimumTransactionAmount() *decimal.Decimal {
	return copyPtr(p.minimumTransactionAmount)
}

func (p *Program) ExpirationPolicy() ExpirationPolicy { return p.expirationPolicy }

func (p *Program) PointsConfig() *PointsConfig { return copyPtr(p.pointsConfig) }

func (p *Program) IsActive() bool { return p.isActive }

func (p *Program) CreatedAt() time.Time { return p.createdAt }

func (p *Program) UpdatedAt() time.Time { return p.updatedAt }

// Rewards returns a copy of the catalog.
func (p *Program) Rewards() []*Reward { return slices.Clone(p.rewards) }

func (p *Program) Reward(id RewardID) (*Reward, bool) {
	for _, r := range p.rewards {
		if r.id == id {
			return r, true
		}
	}
	return nil, false
}

// Update changes the rules of the program. The program type never changes.
func (p *Program) Update(r ProgramRules) error {
	if err := p.applyRules(r); err != nil {
		return err
	}
	p.updatedAt = p.clock.Now()
	return nil
}

func (p *Program) Activate() {
	p.isActive = true
	p.updatedAt = p.clock.Now()
}

func (p *Program) Deactivate() {
	p.isActive = false
	p.updatedAt = p.clock.Now()
}

func (p *Program) CreateReward(d RewardDetails) (*Reward, error) {
	reward, err := newReward(p.id, d, p.clock)
	if err != nil {
		return nil, err
	}
	p.rewards = append(p.rewards, reward)
	return reward, nil
}

func (p *Program) IsValidForStampIssuance() bool {
	return p.isActive && p.programType == ProgramStamp
}

func (p *Program) IsValidForPointsIssuance(transactionAmount decimal.Decimal) bool {
	if !p.isActive || p.programType != ProgramPoints {
		return false
	}
	return p.minimumTransactionAmount == nil || transactionAmount.GreaterThanOrEqual(*p.minimumTransactionAmount)
}

// EffectivePointsConfig returns the configured PointsConfig, or one derived from the
// conversion rate that rounds down and grants no bonus.
func (p *Program) EffectivePointsConfig() (PointsConfig, error) {
	if p.programType != ProgramPoints || p.pointsConversionRate == nil {
		return PointsConfig{}, ErrWrongProgramType
	}
	if p.pointsConfig != nil {
		return *p.pointsConfig, nil
	}
	return PointsConfig{pointsPerUnit: *p.pointsConversionRate, roundingRule: RoundDown}, nil
}

// CalculatePoints converts a purchase amount into points. Amounts under the program minimum earn nothing.
func (p *Program) CalculatePoints(transactionAmount decimal.Decimal) (decimal.Decimal, error) {
	cfg, err := p.EffectivePointsConfig()
	if err != nil {
		return decimal.Zero, err
	}
	if transactionAmount.IsNegative() {
		return decimal.Zero, invalidArgument("transaction amount", "must not be negative")
	}
	if p.minimumTransactionAmount != nil && transactionAmount.LessThan(*p.minimumTransactionAmount) {
		return decimal.Zero, nil
	}
	return cfg.CalculatePoints(transactionAmount, decimal.NewFromInt(1))
}

func (p *Program) EnrollmentBonus() decimal.Decimal {
	if p.pointsConfig == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(p.pointsConfig.enrollmentBonusPoints))
}

// CheckDailyStampLimit fails when issuing quantity more stamps today would pass the daily limit.
func (p *Program) CheckDailyStampLimit(issuedToday, quantity int) error {
	if p.dailyStampLimit == nil {
		return nil
	}
	if issuedToday+quantity > *p.dailyStampLimit {
		return fmt.Errorf("%w: %d issued today, limit %d", ErrDailyStampLimitExceeded, issuedToday, *p.dailyStampLimit)
	}
	return nil
}

// CheckRedemptionBalance enforces the minimum points balance required before any redemption.
func (p *Program) CheckRedemptionBalance(balance decimal.Decimal) error {
	if p.programType != ProgramPoints || p.pointsConfig == nil {
		return nil
	}
	minimum := decimal.NewFromInt(int64(p.pointsConfig.minimumPointsForRedemption))
	if balance.LessThan(minimum) {
		return fmt.Errorf("%w: balance %s, minimum %s", ErrBelowMinimumRedemption, balance, minimum)
	}
	return nil
}

// Version is the optimistic concurrency token assigned by storage. 0 means never stored.
func (p *Program) Version() int64 { return p.version }

// SetVersion is called by storage after a successful write.
func (p *Program) SetVersion(v int64) { p.version = v }

// ProgramState is the persisted form of a Program without its rewards.
type ProgramState struct {
	ID                       ProgramID
	BrandID                  BrandID
	Name                     string
	Type                     ProgramType
	StampThreshold           *int
	PointsConversionRate     *decimal.Decimal
	DailyStampLimit          *int
	MinimumTransactionAmount *decimal.Decimal
	ExpirationPolicy         ExpirationPolicyState
	PointsConfig             *PointsConfigState
	IsActive                 bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Version                  int64
}

func (p *Program) State() ProgramState {
	s := ProgramState{
		ID:                       p.id,
		BrandID:                  p.brandID,
		Name:                     p.name,
		Type:                     p.programType,
		StampThreshold:           p.StampThreshold(),
		PointsConversionRate:     p.PointsConversionRate(),
		DailyStampLimit:          p.DailyStampLimit(),
		MinimumTransactionAmount: p.MinimumTransactionAmount(),
		ExpirationPolicy:         p.expirationPolicy.State(),
		IsActive:                 p.isActive,
		CreatedAt:                p.createdAt,
		UpdatedAt:                p.updatedAt,
		Version:                  p.version,
	}
	if p.pointsConfig != nil {
		cfg := p.pointsConfig.State()
		s.PointsConfig = &cfg
	}
	return s
}

// RehydrateProgram restores a stored program and its rewards without running business validation.
func RehydrateProgram(s ProgramState, rewards []*Reward, clock Clock) *Program {
	p := &Program{
		id:                       s.ID,
		brandID:                  s.BrandID,
		name:                     s.Name,
		programType:              s.Type,
		stampThreshold:           copyPtr(s.StampThreshold),
		pointsConversionRate:     copyPtr(s.PointsConversionRate),
		dailyStampLimit:          copyPtr(s.DailyStampLimit),
		minimumTransactionAmount: copyPtr(s.MinimumTransactionAmount),
		expirationPolicy:         RehydrateExpirationPolicy(s.ExpirationPolicy),
		isActive:                 s.IsActive,
		createdAt:                s.CreatedAt,
		updatedAt:                s.UpdatedAt,
		rewards:                  slices.Clone(rewards),
		version:                  s.Version,
		clock:                    clockOrSystem(clock),
	}
	if s.PointsConfig != nil {
		cfg := RehydratePointsConfig(*s.PointsConfig)
		p.pointsConfig = &cfg
	}
	for _, r := range p.rewards {
		r.clock = p.clock
	}
	return p
}
