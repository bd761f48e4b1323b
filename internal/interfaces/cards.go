package cards

import (
	"context"
	"time"

	model "github.com/glkeru/loyalty/cards/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=./../services/mock_storage_test.go -package=cards . ProgramStorage,CardStorage,CacheStorage,MessageReader,RedemptionConfirmer
//go:generate mockgen -destination=./../api/mock_cards_test.go -package=cards . CardsService
//go:generate mockgen -destination=./../api/grpc/mock_cards_test.go -package=grpc . CardsService

// Программы и каталог наград.
// SaveProgram inserts a program with version 0 and otherwise replaces only the version it was read at,
// a mismatch is model.ErrConcurrentUpdate.
type ProgramStorage interface {
	GetProgram(ctx context.Context, id model.ProgramID) (*model.Program, error)
	SaveProgram(ctx context.Context, program *model.Program) error
}

// Карты и журнал транзакций.
// CreateCard and UpdateCard persist the card together with txs atomically.
// UpdateCard fails with model.ErrConcurrentUpdate when the stored version differs from card.Version().
type CardStorage interface {
	CreateCard(ctx context.Context, card *model.Card, txs ...model.Transaction) error
	UpdateCard(ctx context.Context, card *model.Card, txs ...model.Transaction) error
	GetCard(ctx context.Context, id model.CardID) (*model.Card, error)
	GetTransactions(ctx context.Context, id model.CardID, from time.Time, to time.Time) ([]model.Transaction, error)
	GetCardsDue(ctx context.Context, date time.Time) ([]model.CardID, error)
}

type CacheStorage interface {
	GetBalance(ctx context.Context, id model.CardID) (model.Balance, error)
	SetBalance(ctx context.Context, balance model.Balance) error
	InvalidateBalance(ctx context.Context, id model.CardID) error
}

// Входящие сообщения (kafka, rabbitmq)
type MessageReader interface {
	GetNewMessage(ctx context.Context) (string, error)
}

// Подтверждение списания награды
type RedemptionConfirmer interface {
	Processed(ctx context.Context, requestID string, success bool) error
}

// Операции с программами и картами для HTTP и gRPC
type CardsService interface {
	CreateProgram(ctx context.Context, params model.ProgramParams) (*model.Program, error)
	GetProgram(ctx context.Context, id model.ProgramID) (*model.Program, error)
	UpdateProgram(ctx context.Context, id model.ProgramID, rules model.ProgramRules) (*model.Program, error)
	SetProgramActive(ctx context.Context, id model.ProgramID, active bool) (*model.Program, error)
	AddReward(ctx context.Context, programID model.ProgramID, details model.RewardDetails) (*model.Reward, error)
	UpdateReward(ctx context.Context, programID model.ProgramID, rewardID model.RewardID, details model.RewardDetails) (*model.Reward, error)
	SetRewardActive(ctx context.Context, programID model.ProgramID, rewardID model.RewardID, active bool) (*model.Reward, error)
	Enroll(ctx context.Context, programID model.ProgramID, customerID model.CustomerID, origin model.Origin) (*model.Card, error)
	GetCard(ctx context.Context, id model.CardID) (*model.Card, error)
	GetBalance(ctx context.Context, id model.CardID) (model.Balance, error)
	GetTransactions(ctx context.Context, id model.CardID, from time.Time, to time.Time) ([]model.Transaction, error)
	IssueStamps(ctx context.Context, id model.CardID, quantity int, origin model.Origin) (model.Transaction, error)
	AddPurchasePoints(ctx context.Context, id model.CardID, amount decimal.Decimal, origin model.Origin) (model.Transaction, error)
	RedeemReward(ctx context.Context, id model.CardID, rewardID model.RewardID, origin model.Origin) (model.Transaction, error)
	SuspendCard(ctx context.Context, id model.CardID) (*model.Card, error)
	ReactivateCard(ctx context.Context, id model.CardID) (*model.Card, error)
}
