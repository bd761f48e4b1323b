package cards

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync/atomic"
	"time"

	interf "github.com/glkeru/loyalty/cards/internal/interfaces"
	model "github.com/glkeru/loyalty/cards/internal/models"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers = 3

	// запись карты или программы при конфликте версий
	maxUpdateAttempts = 5
	retryPause        = 5 * time.Millisecond
)

type CardsService struct {
	logger   *zap.Logger
	programs interf.ProgramStorage
	cards    interf.CardStorage
	cache    interf.CacheStorage
	clock    model.Clock
	tracer   trace.Tracer
	workers  int
}

type Option func(*CardsService)

func WithClock(clock model.Clock) Option {
	return func(s *CardsService) { s.clock = clock }
}

// кол-во параллельных обработчиков для пакетных задач
func WithWorkers(n int) Option {
	return func(s *CardsService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// cache может быть nil
func NewCardsService(logger *zap.Logger, programs interf.ProgramStorage, cards interf.CardStorage, cache interf.CacheStorage, opts ...Option) *CardsService {
	s := &CardsService{
		logger:   logger,
		programs: programs,
		cards:    cards,
		cache:    cache,
		clock:    model.SystemClock{},
		tracer:   otel.Tracer("cards"),
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// log
func (s *CardsService) Log(service string, err error, fields ...zap.Field) {
	kind := "internal"
	if errors.Is(err, model.ErrInvalidArgument) || errors.Is(err, model.ErrInvalidOperation) {
		kind = "rejected"
	}
	operationErrorsTotal.WithLabelValues(service, kind).Inc()
	fields = append(fields, zap.String("service", service), zap.Error(err))
	if kind == "rejected" {
		s.logger.Warn("Cards service", fields...)
		return
	}
	s.logger.Error("Cards service", fields...)
}

// Программы

func (s *CardsService) CreateProgram(ctx context.Context, params model.ProgramParams) (*model.Program, error) {
	program, err := model.NewProgram(params, s.clock)
	if err != nil {
		return nil, err
	}
	err = s.programs.SaveProgram(ctx, program)
	if err != nil {
		s.Log("CreateProgram", err)
		return nil, err
	}
	s.logger.Info("program created",
		zap.String("program", program.ID().String()),
		zap.String("type", string(program.Type())),
	)
	return program, nil
}

func (s *CardsService) GetProgram(ctx context.Context, id model.ProgramID) (*model.Program, error) {
	return s.programs.GetProgram(ctx, id)
}

func (s *CardsService) UpdateProgram(ctx context.Context, id model.ProgramID, rules model.ProgramRules) (*model.Program, error) {
	return s.changeProgram(ctx, id, "UpdateProgram", func(p *model.Program) error {
		return p.Update(rules)
	})
}

func (s *CardsService) SetProgramActive(ctx context.Context, id model.ProgramID, active bool) (*model.Program, error) {
	return s.changeProgram(ctx, id, "SetProgramActive", func(p *model.Program) error {
		if active {
			p.Activate()
		} else {
			p.Deactivate()
		}
		return nil
	})
}

// Награды

func (s *CardsService) AddReward(ctx context.Context, programID model.ProgramID, details model.RewardDetails) (*model.Reward, error) {
	var reward *model.Reward
	_, err := s.changeProgram(ctx, programID, "AddReward", func(p *model.Program) (err error) {
		reward, err = p.CreateReward(details)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

func (s *CardsService) UpdateReward(ctx context.Context, programID model.ProgramID, rewardID model.RewardID, details model.RewardDetails) (*model.Reward, error) {
	var reward *model.Reward
	_, err := s.changeProgram(ctx, programID, "UpdateReward", func(p *model.Program) error {
		r, err := findReward(p, rewardID)
		if err != nil {
			return err
		}
		reward = r
		return r.Update(details)
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

func (s *CardsService) SetRewardActive(ctx context.Context, programID model.ProgramID, rewardID model.RewardID, active bool) (*model.Reward, error) {
	var reward *model.Reward
	_, err := s.changeProgram(ctx, programID, "SetRewardActive", func(p *model.Program) error {
		r, err := findReward(p, rewardID)
		if err != nil {
			return err
		}
		reward = r
		if active {
			r.Activate()
		} else {
			r.Deactivate()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

func findReward(p *model.Program, id model.RewardID) (*model.Reward, error) {
	r, ok := p.Reward(id)
	if !ok {
		return nil, fmt.Errorf("reward %s %w", id, model.ErrNotFound)
	}
	return r, nil
}

func (s *CardsService) changeProgram(ctx context.Context, id model.ProgramID, service string, change func(p *model.Program) error) (*model.Program, error) {
	var (
		program *model.Program
		saving  bool
	)
	err := s.retry(ctx, service, func() error {
		p, err := s.programs.GetProgram(ctx, id)
		if err != nil {
			return err
		}
		err = change(p)
		if err != nil {
			return err
		}
		saving = true
		err = s.programs.SaveProgram(ctx, p)
		if err != nil {
			return err
		}
		program = p
		return nil
	})
	if err != nil {
		if saving {
			s.Log(service, err, zap.String("program", id.String()))
		}
		return nil, err
	}
	return program, nil
}

// Карты

// Enroll issues a card, sets its expiration from the program policy and credits the enrollment bonus.
func (s *CardsService) Enroll(ctx context.Context, programID model.ProgramID, customerID model.CustomerID, origin model.Origin) (card *model.Card, err error) {
	ctx, span := s.tracer.Start(ctx, "Enroll", trace.WithAttributes(attribute.String("program.id", programID.String())))
	defer endSpan(span, &err)

	program, err := s.programs.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	card, err = model.NewCard(program, customerID, s.clock)
	if err != nil {
		return nil, err
	}
	if policy := program.ExpirationPolicy(); policy.Expires() {
		err = card.SetExpirationDate(policy.CalculateExpirationDate(s.clock.Now()))
		if err != nil {
			return nil, err
		}
	}

	var txs []model.Transaction
	if bonus := program.EnrollmentBonus(); bonus.IsPositive() {
		origin.Metadata = maps.Clone(origin.Metadata)
		if origin.Metadata == nil {
			origin.Metadata = map[string]string{}
		}
		origin.Metadata["reason"] = "enrollment_bonus"
		tx, err := card.AddPoints(bonus, decimal.Zero, origin)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	err = s.cards.CreateCard(ctx, card, txs...)
	if err != nil {
		s.Log("Enroll", err, zap.String("program", programID.String()))
		return nil, err
	}
	record(txs)
	return card, nil
}

func (s *CardsService) IssueStamps(ctx context.Context, id model.CardID, quantity int, origin model.Origin) (model.Transaction, error) {
	return s.single(ctx, id, "IssueStamps", func(card *model.Card, program *model.Program) (model.Transaction, error) {
		return issueStamps(card, program, quantity, origin)
	})
}

// AddPurchasePoints credits the points a purchase earns under the program rules.
func (s *CardsService) AddPurchasePoints(ctx context.Context, id model.CardID, amount decimal.Decimal, origin model.Origin) (model.Transaction, error) {
	return s.single(ctx, id, "AddPurchasePoints", func(card *model.Card, program *model.Program) (model.Transaction, error) {
		return addPurchasePoints(card, program, amount, origin)
	})
}

func (s *CardsService) RedeemReward(ctx context.Context, id model.CardID, rewardID model.RewardID, origin model.Origin) (model.Transaction, error) {
	return s.single(ctx, id, "RedeemReward", func(card *model.Card, program *model.Program) (model.Transaction, error) {
		reward, err := findReward(program, rewardID)
		if err != nil {
			return model.Transaction{}, err
		}
		if card.Type() == model.ProgramPoints {
			err = program.CheckRedemptionBalance(card.PointsBalance())
			if err != nil {
				return model.Transaction{}, err
			}
		}
		return card.RedeemReward(reward, origin)
	})
}

func (s *CardsService) VoidStamps(ctx context.Context, id model.CardID, quantity int, origin model.Origin) (model.Transaction, error) {
	return s.single(ctx, id, "VoidStamps", func(card *model.Card, _ *model.Program) (model.Transaction, error) {
		return card.VoidStamps(quantity, origin)
	})
}

func (s *CardsService) VoidPoints(ctx context.Context, id model.CardID, points decimal.Decimal, origin model.Origin) (model.Transaction, error) {
	return s.single(ctx, id, "VoidPoints", func(card *model.Card, _ *model.Program) (model.Transaction, error) {
		return card.VoidPoints(points, origin)
	})
}

func (s *CardsService) SuspendCard(ctx context.Context, id model.CardID) (*model.Card, error) {
	return s.mutate(ctx, id, "SuspendCard", func(card *model.Card, _ *model.Program) ([]model.Transaction, error) {
		return nil, card.Suspend()
	})
}

func (s *CardsService) ReactivateCard(ctx context.Context, id model.CardID) (*model.Card, error) {
	return s.mutate(ctx, id, "ReactivateCard", func(card *model.Card, _ *model.Program) ([]model.Transaction, error) {
		return nil, card.Reactivate()
	})
}

func (s *CardsService) ExpireCard(ctx context.Context, id model.CardID) (*model.Card, error) {
	return s.mutate(ctx, id, "ExpireCard", func(card *model.Card, _ *model.Program) ([]model.Transaction, error) {
		card.Expire()
		return nil, nil
	})
}

func (s *CardsService) GetCard(ctx context.Context, id model.CardID) (*model.Card, error) {
	return s.cards.GetCard(ctx, id)
}

// баланс: кэш, затем база.
// Кэш не примет баланс, если параллельное изменение уже положило туда более новую версию.
func (s *CardsService) GetBalance(ctx context.Context, id model.CardID) (model.Balance, error) {
	if s.cache != nil {
		balance, err := s.cache.GetBalance(ctx, id)
		if err == nil {
			return balance, nil
		}
	}
	card, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return model.Balance{}, err
	}
	balance := card.Balance()
	if s.cache != nil {
		_ = s.cache.SetBalance(ctx, balance)
	}
	return balance, nil
}

// транзакции за период
func (s *CardsService) GetTransactions(ctx context.Context, id model.CardID, from time.Time, to time.Time) ([]model.Transaction, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period ends before it starts", model.ErrInvalidArgument)
	}
	return s.cards.GetTransactions(ctx, id, from, to)
}

// ExpireDue expires every card whose expiration date has passed. Failures of single cards are
// logged and skipped; only a failure to list the cards is returned.
func (s *CardsService) ExpireDue(ctx context.Context) (expired int, err error) {
	ids, err := s.cards.GetCardsDue(ctx, s.clock.Now())
	if err != nil {
		s.Log("ExpireDue", err)
		return 0, err
	}

	var count atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, id := range ids {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			_, err := s.ExpireCard(gctx, id)
			if err != nil {
				// уже залогировано
				return nil
			}
			count.Add(1)
			return nil
		})
	}
	err = g.Wait()
	return int(count.Load()), err
}

// правила начисления

func issueStamps(card *model.Card, program *model.Program, quantity int, origin model.Origin) (model.Transaction, error) {
	if !program.IsValidForStampIssuance() {
		return model.Transaction{}, programRejection(program, model.ProgramStamp)
	}
	err := program.CheckDailyStampLimit(card.StampsIssuedToday(), quantity)
	if err != nil {
		return model.Transaction{}, err
	}
	return card.IssueStamps(quantity, origin)
}

func addPurchasePoints(card *model.Card, program *model.Program, amount decimal.Decimal, origin model.Origin) (model.Transaction, error) {
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: transaction amount must not be negative", model.ErrInvalidArgument)
	}
	if !program.IsValidForPointsIssuance(amount) {
		if program.IsActive() && program.Type() == model.ProgramPoints {
			return model.Transaction{}, model.ErrBelowMinimumAmount
		}
		return model.Transaction{}, programRejection(program, model.ProgramPoints)
	}
	points, err := program.CalculatePoints(amount)
	if err != nil {
		return model.Transaction{}, err
	}
	if !points.IsPositive() {
		return model.Transaction{}, model.ErrNoPointsEarned
	}
	return card.AddPoints(points, amount, origin)
}

func programRejection(program *model.Program, want model.ProgramType) error {
	if program.Type() != want {
		return fmt.Errorf("%w: %s program", model.ErrWrongProgramType, program.Type())
	}
	return model.ErrProgramInactive
}

// single wraps an operation that appends exactly one transaction.
func (s *CardsService) single(ctx context.Context, id model.CardID, service string, op func(card *model.Card, program *model.Program) (model.Transaction, error)) (model.Transaction, error) {
	var tx model.Transaction
	_, err := s.mutate(ctx, id, service, func(card *model.Card, program *model.Program) ([]model.Transaction, error) {
		var err error
		tx, err = op(card, program)
		if err != nil {
			return nil, err
		}
		return []model.Transaction{tx}, nil
	})
	if err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// mutate loads the card with its program, applies op and stores the card with the new
// transactions in one storage call. A card found past its expiration date is expired first,
// and that status change is stored even when op fails.
// A concurrent write to the same card makes the whole round run again on fresh state.
func (s *CardsService) mutate(ctx context.Context, id model.CardID, service string, op func(card *model.Card, program *model.Program) ([]model.Transaction, error)) (card *model.Card, err error) {
	ctx, span := s.tracer.Start(ctx, service, trace.WithAttributes(attribute.String("card.id", id.String())))
	defer endSpan(span, &err)

	var txs []model.Transaction
	err = s.retry(ctx, service, func() error {
		var err error
		card, txs, err = s.apply(ctx, id, service, op)
		return err
	})
	if err != nil {
		s.Log(service, err, zap.String("card", id.String()))
		return nil, err
	}
	record(txs)
	s.logger.Debug("card updated",
		zap.String("service", service),
		zap.Stringer("balance", card.Balance()),
	)
	return card, nil
}

// один проход: загрузка, операция, запись
func (s *CardsService) apply(ctx context.Context, id model.CardID, service string, op func(card *model.Card, program *model.Program) ([]model.Transaction, error)) (*model.Card, []model.Transaction, error) {
	card, err := s.cards.GetCard(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	program, err := s.programs.GetProgram(ctx, card.ProgramID())
	if err != nil {
		return nil, nil, err
	}

	wasExpired := card.Status() == model.CardExpired
	expired := card.IsDue(s.clock.Now())
	if expired {
		card.Expire()
	}

	txs, opErr := op(card, program)
	if opErr != nil {
		if !expired {
			return nil, nil, opErr
		}
		// истечение сохраняем без транзакций
		txs = nil
	}

	err = s.store(ctx, card, txs)
	if err != nil {
		if opErr != nil && !errors.Is(err, model.ErrConcurrentUpdate) {
			s.Log(service, err, zap.String("card", id.String()))
			return nil, nil, opErr
		}
		return nil, nil, err
	}
	if !wasExpired && card.Status() == model.CardExpired {
		cardsExpiredTotal.Inc()
	}
	if opErr != nil {
		return nil, nil, opErr
	}
	return card, txs, nil
}

// retry reruns attempt while storage reports a concurrent update, with a growing pause.
// Every attempt must reload what it changes.
func (s *CardsService) retry(ctx context.Context, service string, attempt func() error) error {
	var err error
	for i := 1; ; i++ {
		err = attempt()
		if !errors.Is(err, model.ErrConcurrentUpdate) || i == maxUpdateAttempts {
			return err
		}
		updateConflictsTotal.WithLabelValues(service).Inc()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i) * retryPause):
		}
	}
}

// store writes the card and puts its fresh balance into the cache.
// If the cache write fails the entry is dropped instead.
func (s *CardsService) store(ctx context.Context, card *model.Card, txs []model.Transaction) error {
	err := s.cards.UpdateCard(ctx, card, txs...)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}
	err = s.cache.SetBalance(ctx, card.Balance())
	if err != nil {
		s.logger.Error(err.Error())
		err = s.cache.InvalidateBalance(ctx, card.ID())
		if err != nil {
			s.logger.Error(err.Error())
		}
	}
	return nil
}

func record(txs []model.Transaction) {
	for _, tx := range txs {
		transactionsTotal.WithLabelValues(string(tx.Type())).Inc()
		switch tx.Type() {
		case model.StampIssuance:
			stampsIssuedTotal.Add(float64(tx.Quantity()))
		case model.PointsIssuance:
			pointsIssuedTotal.Add(tx.PointsAmount().InexactFloat64())
		}
	}
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(otelcodes.Error, (*err).Error())
	}
	span.End()
}
