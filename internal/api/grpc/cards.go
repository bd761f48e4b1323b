package grpc

import (
	context "context"
	"errors"
	"time"

	interf "github.com/glkeru/loyalty/cards/internal/interfaces"
	model "github.com/glkeru/loyalty/cards/internal/models"
	"go.uber.org/zap"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative cards.proto

type CardsService struct {
	service interf.CardsService
	logger  *zap.Logger
	UnimplementedCardsServer
}

func NewCardsService(service interf.CardsService, logger *zap.Logger) *CardsService {
	return &CardsService{service, logger, UnimplementedCardsServer{}}
}

// Баланс
func (p *CardsService) GetBalance(ctx context.Context, in *BalanceRequest) (*BalanceResponse, error) {
	id, err := model.ParseID[model.CardTag](in.GetCardId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	balance, err := p.service.GetBalance(ctx, id)
	if err != nil {
		return nil, p.status("GetBalance", err)
	}
	resp := &BalanceResponse{
		CardId:    balance.CardID.String(),
		ProgramId: balance.ProgramID.String(),
		Type:      string(balance.Type),
		Stamps:    int32(balance.Stamps),
		Points:    balance.Points.String(),
		Status:    string(balance.Status),
	}
	if balance.ExpiresAt != nil {
		resp.ExpiresAt = balance.ExpiresAt.Format(time.RFC3339)
	}
	return resp, nil
}

// История транзакций
func (p *CardsService) GetTransactions(ctx context.Context, in *TransactionsRequest) (*TransactionsResponse, error) {
	id, err := model.ParseID[model.CardTag](in.GetCardId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	from := time.Time{}
	if in.GetDateFrom() != "" {
		from, err = time.Parse(time.DateOnly, in.GetDateFrom())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}
	to := model.MaxTime
	if in.GetDateTo() != "" {
		to, err = time.Parse(time.DateOnly, in.GetDateTo())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	txs, err := p.service.GetTransactions(ctx, id, from, to)
	if err != nil {
		return nil, p.status("GetTransactions", err)
	}
	// сформировать ответ
	resp := make([]*TransactionMessage, len(txs))
	for i, v := range txs {
		s := v.State()
		m := &TransactionMessage{
			Id:           s.ID.String(),
			Type:         string(s.Type),
			Quantity:     int32(s.Quantity),
			Points:       s.PointsAmount.String(),
			StoreId:      s.StoreID.String(),
			PosReference: s.POSReference,
			Timestamp:    s.Timestamp.Format(time.RFC3339Nano),
		}
		if s.RewardID != nil {
			m.RewardId = s.RewardID.String()
		}
		if s.TransactionAmount != nil {
			m.Amount = s.TransactionAmount.String()
		}
		resp[i] = m
	}
	return &TransactionsResponse{Transactions: resp}, nil
}

func (p *CardsService) status(method string, err error) error {
	code := Code(err)
	if code == codes.Internal {
		p.logger.Error("gRPC request failed", zap.String("service", method), zap.Error(err))
	}
	return status.Error(code, err.Error())
}

func Code(err error) codes.Code {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		return codes.InvalidArgument
	case errors.Is(err, model.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, model.ErrConcurrentUpdate):
		return codes.Aborted
	case errors.Is(err, model.ErrInvalidOperation):
		return codes.FailedPrecondition
	}
	return codes.Internal
}
