package cards

import (
	"fmt"
	"time"

	model "github.com/glkeru/loyalty/cards/internal/models"
	"github.com/shopspring/decimal"
)

// Запросы

type ExpirationDTO struct {
	Kind       string `json:"kind"`
	PeriodType string `json:"periodType,omitempty"`
	Period     int    `json:"period,omitempty"`
	Day        int    `json:"day,omitempty"`
	Month      int    `json:"month,omitempty"`
}

func (e *ExpirationDTO) policy() (model.ExpirationPolicy, error) {
	if e == nil {
		return model.NoExpiration(), nil
	}
	switch model.ExpirationKind(e.Kind) {
	case "", model.ExpirationNone:
		return model.NoExpiration(), nil
	case model.ExpirationRelative:
		return model.NewRelativeExpiration(model.PeriodType(e.PeriodType), e.Period)
	case model.ExpirationFixed:
		return model.NewFixedDateExpiration(e.Day, e.Month)
	}
	return model.ExpirationPolicy{}, fmt.Errorf("%w: expiration kind %q is unknown", model.ErrInvalidArgument, e.Kind)
}

type PointsConfigDTO struct {
	PointsPerUnit              decimal.Decimal `json:"pointsPerUnit"`
	MinimumPointsForRedemption int             `json:"minimumPointsForRedemption"`
	RoundingRule               string          `json:"roundingRule"`
	EnrollmentBonusPoints      int             `json:"enrollmentBonusPoints"`
}

type RulesRequest struct {
	Name                     string           `json:"name"`
	StampThreshold           int              `json:"stampThreshold,omitempty"`
	PointsConversionRate     decimal.Decimal  `json:"pointsConversionRate"`
	DailyStampLimit          *int             `json:"dailyStampLimit,omitempty"`
	MinimumTransactionAmount *decimal.Decimal `json:"minimumTransactionAmount,omitempty"`
	Expiration               *ExpirationDTO   `json:"expiration,omitempty"`
	PointsConfig             *PointsConfigDTO `json:"pointsConfig,omitempty"`
}

func (r RulesRequest) rules() (model.ProgramRules, error) {
	policy, err := r.Expiration.policy()
	if err != nil {
		return model.ProgramRules{}, err
	}
	rules := model.ProgramRules{
		Name:                     r.Name,
		StampThreshold:           r.StampThreshold,
		PointsConversionRate:     r.PointsConversionRate,
		DailyStampLimit:          r.DailyStampLimit,
		MinimumTransactionAmount: r.MinimumTransactionAmount,
		ExpirationPolicy:         policy,
	}
	if c := r.PointsConfig; c != nil {
		cfg, err := model.NewPointsConfig(c.PointsPerUnit, c.MinimumPointsForRedemption, model.RoundingRule(c.RoundingRule), c.EnrollmentBonusPoints)
		if err != nil {
			return model.ProgramRules{}, err
		}
		rules.PointsConfig = &cfg
	}
	return rules, nil
}

type ProgramRequest struct {
	BrandID model.BrandID `json:"brandId"`
	Type    string          `json:"type"`
	RulesRequest
}

type RewardRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	RequiredValue int        `json:"requiredValue"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
}

func (r RewardRequest) details() model.RewardDetails {
	return model.RewardDetails{
		Title:         r.Title,
		Description:   r.Description,
		RequiredValue: r.RequiredValue,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
	}
}

type OriginDTO struct {
	StoreID      model.StoreID     `json:"storeId"`
	StaffID      *model.StaffID    `json:"staffId,omitempty"`
	POSReference string            `json:"posReference,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

func (o OriginDTO) origin() model.Origin {
	return model.Origin{StoreID: o.StoreID, StaffID: o.StaffID, POSReference: o.POSReference, Metadata: o.Metadata}
}

type EnrollRequest struct {
	ProgramID  model.ProgramID  `json:"programId"`
	CustomerID model.CustomerID `json:"customerId"`
	OriginDTO
}

type StampsRequest struct {
	Quantity int `json:"quantity"`
	OriginDTO
}

type PointsRequest struct {
	Amount decimal.Decimal `json:"amount"`
	OriginDTO
}

type RedemptionRequest struct {
	RewardID model.RewardID `json:"rewardId"`
	OriginDTO
}

// Ответы

type RewardResponse struct {
	ID            model.RewardID  `json:"id"`
	ProgramID     model.ProgramID `json:"programId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	RequiredValue int             `json:"requiredValue"`
	ValidFrom     *time.Time      `json:"validFrom,omitempty"`
	ValidTo       *time.Time      `json:"validTo,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func newRewardResponse(r *model.Reward) RewardResponse {
	s := r.State()
	return RewardResponse{
		ID:            s.ID,
		ProgramID:     s.ProgramID,
		Title:         s.Title,
		Description:   s.Description,
		RequiredValue: s.RequiredValue,
		ValidFrom:     s.ValidFrom,
		ValidTo:       s.ValidTo,
		Active:        s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type ProgramResponse struct {
	ID                       model.ProgramID  `json:"id"`
	BrandID                  model.BrandID    `json:"brandId"`
	Name                     string           `json:"name"`
	Type                     string           `json:"type"`
	StampThreshold           *int             `json:"stampThreshold,omitempty"`
	PointsConversionRate     *decimal.Decimal `json:"pointsConversionRate,omitempty"`
	DailyStampLimit          *int             `json:"dailyStampLimit,omitempty"`
	MinimumTransactionAmount *decimal.Decimal `json:"minimumTransactionAmount,omitempty"`
	Expiration               ExpirationDTO    `json:"expiration"`
	PointsConfig             *PointsConfigDTO `json:"pointsConfig,omitempty"`
	Active                   bool             `json:"active"`
	CreatedAt                time.Time        `json:"createdAt"`
	UpdatedAt                time.Time        `json:"updatedAt"`
	Rewards                  []RewardResponse `json:"rewards"`
}

func newProgramResponse(p *model.Program) ProgramResponse {
	s := p.State()
	e := s.ExpirationPolicy
	resp := ProgramResponse{
		ID:                       s.ID,
		BrandID:                  s.BrandID,
		Name:                     s.Name,
		Type:                     string(s.Type),
		StampThreshold:           s.StampThreshold,
		PointsConversionRate:     s.PointsConversionRate,
		DailyStampLimit:          s.DailyStampLimit,
		MinimumTransactionAmount: s.MinimumTransactionAmount,
		Expiration: ExpirationDTO{
			Kind:       string(e.Kind),
			PeriodType: string(e.PeriodType),
			Period:     e.Period,
			Day:        e.Day,
			Month:      e.Month,
		},
		Active:    s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Rewards:   []RewardResponse{},
	}
	if c := s.PointsConfig; c != nil {
		resp.PointsConfig = &PointsConfigDTO{
			PointsPerUnit:              c.PointsPerUnit,
			MinimumPointsForRedemption: c.MinimumPointsForRedemption,
			RoundingRule:               string(c.RoundingRule),
			EnrollmentBonusPoints:      c.EnrollmentBonusPoints,
		}
	}
	for _, r := range p.Rewards() {
		resp.Rewards = append(resp.Rewards, newRewardResponse(r))
	}
	return resp
}

type CardResponse struct {
	ID         model.CardID     `json:"id"`
	ProgramID  model.ProgramID  `json:"programId"`
	CustomerID model.CustomerID `json:"customerId"`
	Type       string           `json:"type"`
	Stamps     int              `json:"stamps"`
	Points     decimal.Decimal  `json:"points"`
	Status     string           `json:"status"`
	QRCode     string           `json:"qrCode"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	ExpiresAt  *time.Time       `json:"expiresAt,omitempty"`
}

func newCardResponse(c *model.Card) CardResponse {
	s := c.State()
	return CardResponse{
		ID:         s.ID,
		ProgramID:  s.ProgramID,
		CustomerID: s.CustomerID,
		Type:       string(s.Type),
		Stamps:     s.StampsCollected,
		Points:     s.PointsBalance,
		Status:     string(s.Status),
		QRCode:     s.QRCode,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		ExpiresAt:  s.ExpiresAt,
	}
}

type TransactionResponse struct {
	ID           model.TransactionID `json:"id"`
	CardID       model.CardID        `json:"cardId"`
	Type         string              `json:"type"`
	RewardID     *model.RewardID     `json:"rewardId,omitempty"`
	Quantity     int                 `json:"quantity,omitempty"`
	Points       decimal.Decimal     `json:"points"`
	Amount       *decimal.Decimal    `json:"amount,omitempty"`
	StoreID      model.StoreID       `json:"storeId"`
	StaffID      *model.StaffID      `json:"staffId,omitempty"`
	POSReference string              `json:"posReference,omitempty"`
	Timestamp    time.Time           `json:"timestamp"`
	Metadata     map[string]string   `json:"metadata,omitempty"`
}

func newTransactionResponse(t model.Transaction) TransactionResponse {
	s := t.State()
	return TransactionResponse{
		ID:           s.ID,
		CardID:       s.CardID,
		Type:         string(s.Type),
		RewardID:     s.RewardID,
		Quantity:     s.Quantity,
		Points:       s.PointsAmount,
		Amount:       s.TransactionAmount,
		StoreID:      s.StoreID,
		StaffID:      s.StaffID,
		POSReference: s.POSReference,
		Timestamp:    s.Timestamp,
		Metadata:     s.Metadata,
	}
}
