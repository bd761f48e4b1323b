package cards

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CardStatus string

const (
	CardActive    CardStatus = "active"
	CardExpired   CardStatus = "expired"
	CardSuspended CardStatus = "suspended"
)

// Card is one customer's enrollment in a program. Balances change only through the
// operations below, and every change appends exactly one Transaction.
// A Card is not safe for concurrent use; writers are serialized by storage through Version.
type Card struct {
	id              CardID
	programID       ProgramID
	customerID      CustomerID
	cardType        ProgramType
	stampsCollected int
	pointsBalance   decimal.Decimal
	status          CardStatus
	qrCode          string
	createdAt       time.Time
	updatedAt       time.Time
	expiresAt       *time.Time
	transactions    []Transaction
	version         int64
	clock           Clock
}

// NewCard enrolls a customer in an active program.
func NewCard(program *Program, customerID CustomerID, clock Clock) (*Card, error) {
	if program == nil {
		return nil, invalidArgument("program", "is required")
	}
	if customerID.IsZero() {
		return nil, invalidArgument("customer id", "is required")
	}
	if !program.IsActive() {
		return nil, ErrProgramInactive
	}
	clock = clockOrSystem(clock)
	now := clock.Now()
	id := NewID[CardTag]()
	return &Card{
		id:            id,
		programID:     program.ID(),
		customerID:    customerID,
		cardType:      program.Type(),
		pointsBalance: decimal.Zero,
		status:        CardActive,
		qrCode:        id.String(),
		createdAt:     now,
		updatedAt:     now,
		clock:         clock,
	}, nil
}

func (c *Card) ID() CardID { return c.id }

func (c *Card) ProgramID() ProgramID { return c.programID }

func (c *Card) CustomerID() CustomerID { return c.customerID }

func (c *Card) Type() ProgramType { return c.cardType }

func (c *Card) StampsCollected() int { return c.stampsCollected }

func (c *Card) PointsBalance() decimal.Decimal { return c.pointsBalance }

func (c *Card) Status() CardStatus { return c.status }

func (c *Card) QRCode() string { return c.qrCode }

func (c *Card) CreatedAt() time.Time { return c.createdAt }

func (c *Card) UpdatedAt() time.Time { return c.updatedAt }

func (c *Card) ExpiresAt() *time.Time { return copyPtr(c.expiresAt) }

// Version is the optimistic concurrency token assigned by storage.
func (c *Card) Version() int64 { return c.version }

// SetVersion is called by storage after a successful write.
func (c *Card) SetVersion(v int64) { c.version = v }

// Transactions returns a copy of the ledger, oldest first.
func (c *Card) Transactions() []Transaction { return slices.Clone(c.transactions) }

func (c *Card) IssueStamps(quantity int, origin Origin) (Transaction, error) {
	if quantity <= 0 {
		return Transaction{}, invalidArgument("quantity", "must be positive")
	}
	if err := origin.validate(); err != nil {
		return Transaction{}, err
	}
	if err := c.requireActive(ProgramStamp); err != nil {
		return Transaction{}, err
	}
	tx, err := c.newTransaction(TransactionParams{Type: StampIssuance, Quantity: quantity, Origin: origin})
	if err != nil {
		return Transaction{}, err
	}
	c.stampsCollected += quantity
	c.append(tx)
	return tx, nil
}

func (c *Card) AddPoints(points, transactionAmount decimal.Decimal, origin Origin) (Transaction, error) {
	if !points.IsPositive() {
		return Transaction{}, invalidArgument("points amount", "must be positive")
	}
	if transactionAmount.IsNegative() {
		return Transaction{}, invalidArgument("transaction amount", "must not be negative")
	}
	if err := origin.validate(); err != nil {
		return Transaction{}, err
	}
	if err := c.requireActive(ProgramPoints); err != nil {
		return Transaction{}, err
	}
	tx, err := c.newTransaction(TransactionParams{
		Type:              PointsIssuance,
		PointsAmount:      points,
		TransactionAmount: &transactionAmount,
		Origin:            origin,
	})
	if err != nil {
		return Transaction{}, err
	}
	c.pointsBalance = c.pointsBalance.Add(points)
	c.append(tx)
	return tx, nil
}

// VoidStamps takes back stamps issued for a purchase that was returned.
func (c *Card) VoidStamps(quantity int, origin Origin) (Transaction, error) {
	if quantity <= 0 {
		return Transaction{}, invalidArgument("quantity", "must be positive")
	}
	if err := origin.validate(); err != nil {
		return Transaction{}, err
	}
	if err := c.requireActive(ProgramStamp); err != nil {
		return Transaction{}, err
	}
	if c.stampsCollected < quantity {
		return Transaction{}, fmt.Errorf("%w: %d stamps collected, %d to void", ErrInsufficientBalance, c.stampsCollected, quantity)
	}
	tx, err := c.newTransaction(TransactionParams{Type: StampVoid, Quantity: quantity, Origin: origin})
	if err != nil {
		return Transaction{}, err
	}
	c.stampsCollected -= quantity
	c.append(tx)
	return tx, nil
}

// VoidPoints takes back points issued for a purchase that was returned.
func (c *Card) VoidPoints(points decimal.Decimal, origin Origin) (Transaction, error) {
	if !points.IsPositive() {
		return Transaction{}, invalidArgument("points amount", "must be positive")
	}
	if err := origin.validate(); err != nil {
		return Transaction{}, err
	}
	if err := c.requireActive(ProgramPoints); err != nil {
		return Transaction{}, err
	}
	if c.pointsBalance.LessThan(points) {
		return Transaction{}, fmt.Errorf("%w: balance %s, %s to void", ErrInsufficientBalance, c.pointsBalance, points)
	}
	tx, err := c.newTransaction(TransactionParams{Type: PointsVoid, PointsAmount: points, Origin: origin})
	if err != nil {
		return Transaction{}, err
	}
	c.pointsBalance = c.pointsBalance.Sub(points)
	c.append(tx)
	return tx, nil
}

// RedeemReward spends reward.RequiredValue stamps or points. On failure the card is unchanged.
func (c *Card) RedeemReward(reward *Reward, origin Origin) (Transaction, error) {
	if reward == nil {
		return Transaction{}, invalidArgument("reward", "is required")
	}
	if err := origin.validate(); err != nil {
		return Transaction{}, err
	}
	if c.status != CardActive {
		return Transaction{}, fmt.Errorf("%w: status %s", ErrCardNotActive, c.status)
	}
	if reward.ProgramID() != c.programID {
		return Transaction{}, ErrRewardProgramMismatch
	}
	if !reward.IsActive() || !reward.IsValidAt(c.clock.Now()) {
		return Transaction{}, ErrRewardNotEligible
	}

	required := reward.RequiredValue()
	params := TransactionParams{Type: RewardRedemption, Origin: origin}
	rewardID := reward.ID()
	params.RewardID = &rewardID
	switch c.cardType {
	case ProgramStamp:
		if c.stampsCollected < required {
			return Transaction{}, fmt.Errorf("%w: %d stamps collected, %d required", ErrInsufficientBalance, c.stampsCollected, required)
		}
		params.Quantity = required
	case ProgramPoints:
		if c.pointsBalance.LessThan(decimal.NewFromInt(int64(required))) {
			return Transaction{}, fmt.Errorf("%w: balance %s, %d required", ErrInsufficientBalance, c.pointsBalance, required)
		}
		params.PointsAmount = decimal.NewFromInt(int64(required))
	default:
		return Transaction{}, ErrWrongCardType
	}

	tx, err := c.newTransaction(params)
	if err != nil {
		return Transaction{}, err
	}
	switch c.cardType {
	case ProgramStamp:
		c.stampsCollected -= required
	case ProgramPoints:
		c.pointsBalance = c.pointsBalance.Sub(params.PointsAmount)
	}
	c.append(tx)
	return tx, nil
}

// StampsIssuedToday sums stamps issued on the current UTC date.
func (c *Card) StampsIssuedToday() int {
	if c.cardType != ProgramStamp {
		return 0
	}
	today := c.clock.Now().UTC().Format(time.DateOnly)
	var total int
	for _, tx := range c.transactions {
		if tx.Type() == StampIssuance && tx.Timestamp().UTC().Format(time.DateOnly) == today {
			total += tx.Quantity()
		}
	}
	return total
}

func (c *Card) SetExpirationDate(t time.Time) error {
	now := c.clock.Now()
	if !t.After(now) {
		return invalidArgument("expiration date", "must be in the future")
	}
	c.expiresAt = &t
	c.updatedAt = now
	return nil
}

// AssignQRCode replaces the default QR code, which is the card id.
func (c *Card) AssignQRCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return invalidArgument("qr code", "is required")
	}
	c.qrCode = code
	c.updatedAt = c.clock.Now()
	return nil
}

// IsDue reports whether the card should be expired at t.
func (c *Card) IsDue(t time.Time) bool {
	return c.status != CardExpired && c.expiresAt != nil && !c.expiresAt.After(t)
}

// Expire is terminal and does nothing on an expired card.
func (c *Card) Expire() {
	if c.status == CardExpired {
		return
	}
	c.status = CardExpired
	c.updatedAt = c.clock.Now()
}

func (c *Card) Suspend() error {
	if c.status != CardActive {
		return fmt.Errorf("%w: cannot suspend %s card", ErrInvalidTransition, c.status)
	}
	c.status = CardSuspended
	c.updatedAt = c.clock.Now()
	return nil
}

func (c *Card) Reactivate() error {
	if c.status != CardSuspended {
		return fmt.Errorf("%w: cannot reactivate %s card", ErrInvalidTransition, c.status)
	}
	c.status = CardActive
	c.updatedAt = c.clock.Now()
	return nil
}

func (c *Card) requireActive(t ProgramType) error {
	if c.cardType != t {
		return fmt.Errorf("%w: %s card", ErrWrongCardType, c.cardType)
	}
	if c.status != CardActive {
		return fmt.Errorf("%w: status %s", ErrCardNotActive, c.status)
	}
	return nil
}

func (c *Card) newTransaction(p TransactionParams) (Transaction, error) {
	p.CardID = c.id
	p.Timestamp = c.clock.Now()
	return NewTransaction(p)
}

func (c *Card) append(tx Transaction) {
	c.transactions = append(c.transactions, tx)
	c.updatedAt = tx.Timestamp()
}

// Balance is a read model of a card for caches and queries.
type Balance struct {
	CardID    CardID          `json:"cardId"`
	ProgramID ProgramID       `json:"programId"`
	Type      ProgramType     `json:"type"`
	Stamps    int             `json:"stamps"`
	Points    decimal.Decimal `json:"points"`
	Status    CardStatus      `json:"status"`
	ExpiresAt *time.Time      `json:"expiresAt,omitempty"`
	// версия карты, из которой собран баланс
	Version int64 `json:"version"`
}

func (c *Card) Balance() Balance {
	return Balance{
		CardID:    c.id,
		ProgramID: c.programID,
		Type:      c.cardType,
		Stamps:    c.stampsCollected,
		Points:    c.pointsBalance,
		Status:    c.status,
		ExpiresAt: c.ExpiresAt(),
		Version:   c.version,
	}
}

// String is used in logs.
func (b Balance) String() string {
	if b.Type == ProgramStamp {
		return b.CardID.String() + " stamps=" + strconv.Itoa(b.Stamps)
	}
	return b.CardID.String() + " points=" + b.Points.String()
}

// CardState is the persisted form of a Card without its ledger.
type CardState struct {
	ID              CardID
	ProgramID       ProgramID
	CustomerID      CustomerID
	Type            ProgramType
	StampsCollected int
	PointsBalance   decimal.Decimal
	Status          CardStatus
	QRCode          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       *time.Time
	Version         int64
}

func (c *Card) State() CardState {
	return CardState{
		ID:              c.id,
		ProgramID:       c.programID,
		CustomerID:      c.customerID,
		Type:            c.cardType,
		StampsCollected: c.stampsCollected,
		PointsBalance:   c.pointsBalance,
		Status:          c.status,
		QRCode:          c.qrCode,
		CreatedAt:       c.createdAt,
		UpdatedAt:       c.updatedAt,
		ExpiresAt:       c.ExpiresAt(),
		Version:         c.version,
	}
}

// RehydrateCard restores a stored card with its historical ledger. No business rule is
// evaluated, so history recorded under older rules loads unchanged.
func RehydrateCard(s CardState, transactions []Transaction, clock Clock) *Card {
	return &Card{
		id:              s.ID,
		programID:       s.ProgramID,
		customerID:      s.CustomerID,
		cardType:        s.Type,
		stampsCollected: s.StampsCollected,
		pointsBalance:   s.PointsBalance,
		status:          s.Status,
		qrCode:          s.QRCode,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		expiresAt:       copyPtr(s.ExpiresAt),
		transactions:    slices.Clone(transactions),
		version:         s.Version,
		clock:           clockOrSystem(clock),
	}
}
