package cards

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/glkeru/loyalty/cards/internal/config"
	model "github.com/glkeru/loyalty/cards/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

var cardColumns = []string{
	"id", "program_id", "customer_id", "type", "stamps", "points", "status",
	"qr_code", "created_at", "updated_at", "expires_at", "version",
}

var transactionColumns = []string{
	"id", "card_id", "type", "reward_id", "quantity", "points", "amount",
	"store_id", "staff_id", "pos_reference", "metadata", "created_at",
}

type CardsDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	clock  model.Clock
}

func NewCardsDB(ctx context.Context, cfg config.Postgres, logger *zap.Logger, clock model.Clock) (*CardsDB, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, err
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &CardsDB{pool, logger, clock}, nil
}

func (p *CardsDB) Close() {
	p.pool.Close()
}

// Создание таблиц
func (p *CardsDB) Migrate(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	return err
}

// Новая карта вместе с начальными транзакциями
func (p *CardsDB) CreateCard(ctx context.Context, card *model.Card, txs ...model.Transaction) error {
	return p.inTx(ctx, "CreateCard", func(tx pgx.Tx) error {
		sql, args, err := insertCard(card.State()).ToSql()
		if err != nil {
			return p.sqlError("CreateCard", err, sql, args)
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return p.sqlError("CreateCard", err, sql, args)
		}
		return p.insertTransactions(ctx, tx, txs)
	})
}

// Обновление карты с проверкой версии; после записи карта получает новую версию
func (p *CardsDB) UpdateCard(ctx context.Context, card *model.Card, txs ...model.Transaction) error {
	err := p.inTx(ctx, "UpdateCard", func(tx pgx.Tx) error {
		sql, args, err := updateCard(card.State()).ToSql()
		if err != nil {
			return p.sqlError("UpdateCard", err, sql, args)
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return p.sqlError("UpdateCard", err, sql, args)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("card %s version %d: %w", card.ID(), card.Version(), model.ErrConcurrentUpdate)
		}
		return p.insertTransactions(ctx, tx, txs)
	})
	if err != nil {
		return err
	}
	card.SetVersion(card.Version() + 1)
	return nil
}

func (p *CardsDB) GetCard(ctx context.Context, id model.CardID) (*model.Card, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		p.logger.Error("Get connection error", zap.Error(err), zap.String("service", "GetCard"))
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select(cardColumns...).
		From("cards").
		Where(sq.Eq{"id": id.UUID()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, p.sqlError("GetCard", err, sql, args)
	}
	state, err := scanCard(conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("card %s %w", id, model.ErrNotFound)
		}
		return nil, p.sqlError("GetCard", err, sql, args)
	}

	sql, args, err = selectTransactions(id).ToSql()
	if err != nil {
		return nil, p.sqlError("GetCard", err, sql, args)
	}
	txs, err := p.queryTransactions(ctx, conn.Conn(), sql, args)
	if err != nil {
		return nil, err
	}
	return model.RehydrateCard(state, txs, p.clock), nil
}

// Транзакции карты за период
func (p *CardsDB) GetTransactions(ctx context.Context, id model.CardID, from time.Time, to time.Time) ([]model.Transaction, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		p.logger.Error("Get connection error", zap.Error(err), zap.String("service", "GetTransactions"))
		return nil, err
	}
	defer conn.Release()

	sql, args, err := selectTransactions(id).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.LtOrEq{"created_at": to}).
		ToSql()
	if err != nil {
		return nil, p.sqlError("GetTransactions", err, sql, args)
	}
	return p.queryTransactions(ctx, conn.Conn(), sql, args)
}

// Карты с наступившей датой окончания
func (p *CardsDB) GetCardsDue(ctx context.Context, date time.Time) ([]model.CardID, error) {
	sql, args, err := selectCardsDue(date).ToSql()
	if err != nil {
		return nil, p.sqlError("GetCardsDue", err, sql, args)
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, p.sqlError("GetCardsDue", err, sql, args)
	}
	defer rows.Close()

	var ids []model.CardID
	for rows.Next() {
		var id model.CardID
		err = rows.Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *CardsDB) inTx(ctx context.Context, service string, f func(tx pgx.Tx) error) (err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		p.logger.Error("Get connection error", zap.Error(err), zap.String("service", service))
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	err = f(tx)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (p *CardsDB) insertTransactions(ctx context.Context, tx pgx.Tx, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	sql, args, err := insertTransactions(txs).ToSql()
	if err != nil {
		return p.sqlError("insertTransactions", err, sql, args)
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return p.sqlError("insertTransactions", err, sql, args)
	}
	return nil
}

func (p *CardsDB) queryTransactions(ctx context.Context, conn *pgx.Conn, sql string, args []any) ([]model.Transaction, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, p.sqlError("queryTransactions", err, sql, args)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		s, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, model.RehydrateTransaction(s))
	}
	return txs, rows.Err()
}

func (p *CardsDB) sqlError(service string, err error, sql string, args []any) error {
	p.logger.Error("SQL error",
		zap.Error(err),
		zap.String("service", service),
		zap.String("query", sql),
		zap.Any("args", args),
	)
	return err
}

// Запросы

func insertCard(s model.CardState) sq.InsertBuilder {
	return sq.Insert("cards").
		Columns(cardColumns...).
		Values(s.ID.UUID(), s.ProgramID.UUID(), s.CustomerID.UUID(), string(s.Type), s.StampsCollected,
			s.PointsBalance.String(), string(s.Status), s.QRCode, s.CreatedAt, s.UpdatedAt, s.ExpiresAt, s.Version).
		PlaceholderFormat(sq.Dollar)
}

// the row matches only while nobody else has stored a newer version
func updateCard(s model.CardState) sq.UpdateBuilder {
	return sq.Update("cards").
		SetMap(map[string]any{
			"stamps":     s.StampsCollected,
			"points":     s.PointsBalance.String(),
			"status":     string(s.Status),
			"qr_code":    s.QRCode,
			"updated_at": s.UpdatedAt,
			"expires_at": s.ExpiresAt,
			"version":    sq.Expr("version + 1"),
		}).
		Where(sq.Eq{"id": s.ID.UUID(), "version": s.Version}).
		PlaceholderFormat(sq.Dollar)
}

func insertTransactions(txs []model.Transaction) sq.InsertBuilder {
	q := sq.Insert("card_transactions").
		Columns(transactionColumns...).
		PlaceholderFormat(sq.Dollar)
	for _, tx := range txs {
		s := tx.State()
		var amount, metadata any
		if s.TransactionAmount != nil {
			amount = s.TransactionAmount.String()
		}
		if len(s.Metadata) > 0 {
			metadata = s.Metadata
		}
		q = q.Values(s.ID.UUID(), s.CardID.UUID(), string(s.Type), nullableID(s.RewardID), s.Quantity,
			s.PointsAmount.String(), amount, s.StoreID.UUID(), nullableID(s.StaffID), s.POSReference,
			metadata, s.Timestamp)
	}
	return q
}

func selectTransactions(id model.CardID) sq.SelectBuilder {
	return sq.Select(transactionColumns...).
		From("card_transactions").
		Where(sq.Eq{"card_id": id.UUID()}).
		OrderBy("created_at", "id").
		PlaceholderFormat(sq.Dollar)
}

func selectCardsDue(date time.Time) sq.SelectBuilder {
	return sq.Select("id").
		From("cards").
		Where(sq.NotEq{"status": string(model.CardExpired)}).
		Where(sq.LtOrEq{"expires_at": date}).
		PlaceholderFormat(sq.Dollar)
}

func nullableID[T any](id *model.ID[T]) any {
	if id == nil || id.IsZero() {
		return nil
	}
	return id.UUID()
}

// Чтение строк

func scanCard(row pgx.Row) (model.CardState, error) {
	var s model.CardState
	var cardType, status string
	var expires pgtype.Timestamptz
	err := row.Scan(&s.ID, &s.ProgramID, &s.CustomerID, &cardType, &s.StampsCollected, &s.PointsBalance,
		&status, &s.QRCode, &s.CreatedAt, &s.UpdatedAt, &expires, &s.Version)
	if err != nil {
		return s, err
	}
	s.Type = model.ProgramType(cardType)
	s.Status = model.CardStatus(status)
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	if expires.Status == pgtype.Present {
		t := expires.Time.UTC()
		s.ExpiresAt = &t
	}
	return s, nil
}

func scanTransaction(row pgx.Row) (model.TransactionState, error) {
	var s model.TransactionState
	var txType string
	var reward, staff pgtype.UUID
	var amount decimal.NullDecimal
	var metadata pgtype.JSONB
	err := row.Scan(&s.ID, &s.CardID, &txType, &reward, &s.Quantity, &s.PointsAmount, &amount,
		&s.StoreID, &staff, &s.POSReference, &metadata, &s.Timestamp)
	if err != nil {
		return s, err
	}
	s.Type = model.TransactionType(txType)
	s.Timestamp = s.Timestamp.UTC()
	if reward.Status == pgtype.Present {
		id := model.RewardID(uuid.UUID(reward.Bytes))
		s.RewardID = &id
	}
	if staff.Status == pgtype.Present {
		id := model.StaffID(uuid.UUID(staff.Bytes))
		s.StaffID = &id
	}
	if amount.Valid {
		s.TransactionAmount = &amount.Decimal
	}
	if metadata.Status == pgtype.Present {
		err = metadata.AssignTo(&s.Metadata)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}
