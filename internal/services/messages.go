package cards

import (
	"context"
	"encoding/json"
	"fmt"

	model "github.com/glkeru/loyalty/cards/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Покупка или возврат из кассовой системы.
// Stamps defaults to 1 for stamp cards. Points, when set, is voided as is on return
// instead of being recalculated from Amount.
type PurchaseMessage struct {
	CardID       model.CardID    `json:"cardId"`
	Amount       decimal.Decimal `json:"amount"`
	Stamps       int             `json:"stamps"`
	Points       decimal.Decimal `json:"points"`
	StoreID      model.StoreID   `json:"storeId"`
	StaffID      *model.StaffID  `json:"staffId,omitempty"`
	POSReference string          `json:"posReference"`
}

func (m PurchaseMessage) origin() model.Origin {
	return model.Origin{StoreID: m.StoreID, StaffID: m.StaffID, POSReference: m.POSReference}
}

func (m PurchaseMessage) stamps() int {
	if m.Stamps == 0 {
		return 1
	}
	return m.Stamps
}

func ParsePurchase(msg string) (PurchaseMessage, error) {
	p := PurchaseMessage{}
	err := json.Unmarshal([]byte(msg), &p)
	if err != nil {
		return p, fmt.Errorf("%w: purchase: %s", model.ErrInvalidArgument, err)
	}
	if p.CardID.IsZero() {
		return p, fmt.Errorf("%w: purchase: cardId field is required", model.ErrInvalidArgument)
	}
	return p, nil
}

// Начисление по покупке: штампы или баллы в зависимости от типа карты
func (s *CardsService) ProcessPurchase(ctx context.Context, msg string) (model.Transaction, error) {
	p, err := ParsePurchase(msg)
	if err != nil {
		return model.Transaction{}, err
	}
	return s.single(ctx, p.CardID, "ProcessPurchase", func(card *model.Card, program *model.Program) (model.Transaction, error) {
		if card.Type() == model.ProgramStamp {
			return issueStamps(card, program, p.stamps(), p.origin())
		}
		return addPurchasePoints(card, program, p.Amount, p.origin())
	})
}

// Обработка возврата: списание начисленного
func (s *CardsService) ProcessReturn(ctx context.Context, msg string) (model.Transaction, error) {
	p, err := ParsePurchase(msg)
	if err != nil {
		return model.Transaction{}, err
	}
	s.logger.Info("return",
		zap.String("card", p.CardID.String()),
		zap.String("pos", p.POSReference),
	)
	return s.single(ctx, p.CardID, "ProcessReturn", func(card *model.Card, program *model.Program) (model.Transaction, error) {
		if card.Type() == model.ProgramStamp {
			return card.VoidStamps(p.stamps(), p.origin())
		}
		points := p.Points
		if points.IsZero() {
			points, err = program.CalculatePoints(p.Amount)
			if err != nil {
				return model.Transaction{}, err
			}
		}
		return card.VoidPoints(points, p.origin())
	})
}

// Запрос на списание награды
type RedemptionMessage struct {
	RequestID string         `json:"requestId"`
	CardID    model.CardID   `json:"cardId"`
	RewardID  model.RewardID `json:"rewardId"`
	StoreID   model.StoreID  `json:"storeId"`
	StaffID   *model.StaffID `json:"staffId,omitempty"`
}

// cписание награды; requestId возвращается даже при ошибке, если его удалось прочитать
func (s *CardsService) Redeem(ctx context.Context, msg string) (requestId string, err error) {
	r := &RedemptionMessage{}
	err = json.Unmarshal([]byte(msg), r)
	if err != nil {
		return "", fmt.Errorf("%w: redemption: %s", model.ErrInvalidArgument, err)
	}
	_, err = s.RedeemReward(ctx, r.CardID, r.RewardID, model.Origin{
		StoreID:  r.StoreID,
		StaffID:  r.StaffID,
		Metadata: map[string]string{"requestId": r.RequestID},
	})
	return r.RequestID, err
}
