package cards

import (
	"fmt"
	"maps"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	StampIssuance    TransactionType = "stamp_issuance"
	StampVoid        TransactionType = "stamp_void"
	PointsIssuance   TransactionType = "points_issuance"
	PointsVoid       TransactionType = "points_void"
	RewardRedemption TransactionType = "reward_redemption"
)

// Origin tells where a card operation happened.
type Origin struct {
	StoreID      StoreID
	StaffID      *StaffID
	POSReference string
	Metadata     map[string]string
}

func (o Origin) validate() error {
	if o.StoreID.IsZero() {
		return invalidArgument("store id", "is required")
	}
	return nil
}

// TransactionParams describes a ledger entry to be created.
type TransactionParams struct {
	CardID            CardID
	Type              TransactionType
	RewardID          *RewardID
	Quantity          int
	PointsAmount      decimal.Decimal
	TransactionAmount *decimal.Decimal
	Origin            Origin
	Timestamp         time.Time
}

// Transaction is an immutable ledger entry of a card.
type Transaction struct {
	id                TransactionID
	cardID            CardID
	txType            TransactionType
	rewardID          *RewardID
	quantity          int
	pointsAmount      decimal.Decimal
	transactionAmount *decimal.Decimal
	storeID           StoreID
	staffID           *StaffID
	posReference      string
	timestamp         time.Time
	metadata          map[string]string
}

// NewTransaction validates the fields required by the transaction type.
func NewTransaction(p TransactionParams) (Transaction, error) {
	if p.CardID.IsZero() {
		return Transaction{}, invalidArgument("card id", "is required")
	}
	if err := p.Origin.validate(); err != nil {
		return Transaction{}, err
	}
	switch p.Type {
	case StampIssuance, StampVoid:
		if p.Quantity <= 0 {
			return Transaction{}, invalidArgument("quantity", "must be positive")
		}
	case PointsIssuance, PointsVoid:
		if !p.PointsAmount.IsPositive() {
			return Transaction{}, invalidArgument("points amount", "must be positive")
		}
	case RewardRedemption:
		if p.RewardID == nil || p.RewardID.IsZero() {
			return Transaction{}, invalidArgument("reward id", "is required")
		}
	default:
		return Transaction{}, invalidArgument("transaction type", fmt.Sprintf("%q is unknown", p.Type))
	}
	if p.TransactionAmount != nil && p.TransactionAmount.IsNegative() {
		return Transaction{}, invalidArgument("transaction amount", "must not be negative")
	}
	if p.Timestamp.IsZero() {
		return Transaction{}, invalidArgument("timestamp", "is required")
	}

	return Transaction{
		id:                NewID[TransactionTag](),
		cardID:            p.CardID,
		txType:            p.Type,
		rewardID:          copyPtr(p.RewardID),
		quantity:          p.Quantity,
		pointsAmount:      p.PointsAmount,
		transactionAmount: copyPtr(p.TransactionAmount),
		storeID:           p.Origin.StoreID,
		staffID:           copyPtr(p.Origin.StaffID),
		posReference:      p.Origin.POSReference,
		timestamp:         p.Timestamp,
		metadata:          maps.Clone(p.Origin.Metadata),
	}, nil
}

func (t Transaction) ID() TransactionID { return t.id }

func (t Transaction) CardID() CardID { return t.cardID }

func (t Transaction) Type() TransactionType { return t.txType }

func (t Transaction) RewardID() *RewardID { return copyPtr(t.rewardID) }

func (t Transaction) Quantity() int { return t.quantity }

func (t Transaction) PointsAmount() decimal.Decimal { return t.pointsAmount }

func (t Transaction) TransactionAmount() *decimal.Decimal { return copyPtr(t.transactionAmount) }

func (t Transaction) StoreID() StoreID { return t.storeID }

func (t Transaction) StaffID() *StaffID { return copyPtr(t.staffID) }

func (t Transaction) POSReference() string { return t.posReference }

func (t Transaction) Timestamp() time.Time { return t.timestamp }

func (t Transaction) Metadata() map[string]string { return maps.Clone(t.metadata) }

// TransactionState is the persisted form of a Transaction.
type TransactionState struct {
	ID                TransactionID
	CardID            CardID
	Type              TransactionType
	RewardID          *RewardID
	Quantity          int
	PointsAmount      decimal.Decimal
	TransactionAmount *decimal.Decimal
	StoreID           StoreID
	StaffID           *StaffID
	POSReference      string
	Timestamp         time.Time
	Metadata          map[string]string
}

func (t Transaction) State() TransactionState {
	return TransactionState{
		ID:                t.id,
		CardID:            t.cardID,
		Type:              t.txType,
		RewardID:          t.RewardID(),
		Quantity:          t.quantity,
		PointsAmount:      t.pointsAmount,
		TransactionAmount: t.TransactionAmount(),
		StoreID:           t.storeID,
		StaffID:           t.StaffID(),
		POSReference:      t.posReference,
		Timestamp:         t.timestamp,
		Metadata:          t.Metadata(),
	}
}

// RehydrateTransaction restores a stored ledger entry as is.
func RehydrateTransaction(s TransactionState) Transaction {
	return Transaction{
		id:                s.ID,
		cardID:            s.CardID,
		txType:            s.Type,
		rewardID:          copyPtr(s.RewardID),
		quantity:          s.Quantity,
		pointsAmount:      s.PointsAmount,
		transactionAmount: copyPtr(s.TransactionAmount),
		storeID:           s.StoreID,
		staffID:           copyPtr(s.StaffID),
		posReference:      s.POSReference,
		timestamp:         s.Timestamp,
		metadata:          maps.Clone(s.Metadata),
	}
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
