package cards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glkeru/loyalty/cards/internal/config"
	model "github.com/glkeru/loyalty/cards/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgramsDB struct {
	mgo   *mongo.Client
	coll  *mongo.Collection
	clock model.Clock
}

func NewProgramsDB(ctx context.Context, cfg config.Mongo, clock model.Clock) (*ProgramsDB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	coll := client.Database(cfg.Database).Collection("programs")

	// уникальность id программы
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &ProgramsDB{client, coll, clock}, nil
}

func (r *ProgramsDB) Close(ctx context.Context) error {
	return r.mgo.Disconnect(ctx)
}

func (r *ProgramsDB) GetProgram(ctx context.Context, id model.ProgramID) (*model.Program, error) {
	var doc programDoc
	err := r.coll.FindOne(ctx, bson.M{"id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("program %s %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return doc.program(r.clock)
}

// Программа сохраняется целиком вместе с наградами.
// Запись идёт только поверх той версии, что была прочитана, иначе ErrConcurrentUpdate.
func (r *ProgramsDB) SaveProgram(ctx context.Context, program *model.Program) error {
	doc, filter := saveProgramQuery(program)
	if filter == nil {
		_, err := r.coll.InsertOne(ctx, doc)
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("program %s: %w", doc.ID, model.ErrConcurrentUpdate)
		}
		if err != nil {
			return err
		}
	} else {
		res, err := r.coll.ReplaceOne(ctx, filter, doc)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("program %s version %d: %w", doc.ID, program.Version(), model.ErrConcurrentUpdate)
		}
	}
	program.SetVersion(doc.Version)
	return nil
}

// новая программа (версия 0) вставляется, filter == nil
func saveProgramQuery(program *model.Program) (programDoc, bson.M) {
	doc := newProgramDoc(program)
	doc.Version = program.Version() + 1
	if program.Version() == 0 {
		return doc, nil
	}
	return doc, bson.M{"id": doc.ID, "version": program.Version()}
}

// Документы

type programDoc struct {
	ID                       string           `bson:"id"`
	BrandID                  string           `bson:"brandId"`
	Name                     string           `bson:"name"`
	Type                     string           `bson:"type"`
	StampThreshold           *int             `bson:"stampThreshold,omitempty"`
	PointsConversionRate     *string          `bson:"pointsConversionRate,omitempty"`
	DailyStampLimit          *int             `bson:"dailyStampLimit,omitempty"`
	MinimumTransactionAmount *string          `bson:"minimumTransactionAmount,omitempty"`
	Expiration               expirationDoc    `bson:"expiration"`
	PointsConfig             *pointsConfigDoc `bson:"pointsConfig,omitempty"`
	Active                   bool             `bson:"active"`
	CreatedAt                time.Time        `bson:"createdAt"`
	UpdatedAt                time.Time        `bson:"updatedAt"`
	Rewards                  []rewardDoc      `bson:"rewards"`
	Version                  int64            `bson:"version"`
}

type expirationDoc struct {
	Kind       string `bson:"kind"`
	PeriodType string `bson:"periodType,omitempty"`
	Period     int    `bson:"period,omitempty"`
	Day        int    `bson:"day,omitempty"`
	Month      int    `bson:"month,omitempty"`
}

type pointsConfigDoc struct {
	PointsPerUnit              string `bson:"pointsPerUnit"`
	MinimumPointsForRedemption int    `bson:"minimumPointsForRedemption"`
	RoundingRule               string `bson:"roundingRule"`
	EnrollmentBonusPoints      int    `bson:"enrollmentBonusPoints"`
}

type rewardDoc struct {
	ID            string     `bson:"id"`
	Title         string     `bson:"title"`
	Description   string     `bson:"description"`
	RequiredValue int        `bson:"requiredValue"`
	ValidFrom     *time.Time `bson:"validFrom,omitempty"`
	ValidTo       *time.Time `bson:"validTo,omitempty"`
	Active        bool       `bson:"active"`
	CreatedAt     time.Time  `bson:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt"`
}

func newProgramDoc(p *model.Program) programDoc {
	s := p.State()
	e := s.ExpirationPolicy
	doc := programDoc{
		ID:                       s.ID.String(),
		BrandID:                  s.BrandID.String(),
		Name:                     s.Name,
		Type:                     string(s.Type),
		StampThreshold:           s.StampThreshold,
		PointsConversionRate:     decimalString(s.PointsConversionRate),
		DailyStampLimit:          s.DailyStampLimit,
		MinimumTransactionAmount: decimalString(s.MinimumTransactionAmount),
		Expiration: expirationDoc{
			Kind:       string(e.Kind),
			PeriodType: string(e.PeriodType),
			Period:     e.Period,
			Day:        e.Day,
			Month:      e.Month,
		},
		Active:    s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Rewards:   []rewardDoc{},
		Version:   s.Version,
	}
	if c := s.PointsConfig; c != nil {
		doc.PointsConfig = &pointsConfigDoc{
			PointsPerUnit:              c.PointsPerUnit.String(),
			MinimumPointsForRedemption: c.MinimumPointsForRedemption,
			RoundingRule:               string(c.RoundingRule),
			EnrollmentBonusPoints:      c.EnrollmentBonusPoints,
		}
	}
	for _, reward := range p.Rewards() {
		r := reward.State()
		doc.Rewards = append(doc.Rewards, rewardDoc{
			ID:            r.ID.String(),
			Title:         r.Title,
			Description:   r.Description,
			RequiredValue: r.RequiredValue,
			ValidFrom:     r.ValidFrom,
			ValidTo:       r.ValidTo,
			Active:        r.IsActive,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return doc
}

// program restores the aggregate; bson drops the time zone, so times come back in UTC.
func (d programDoc) program(clock model.Clock) (*model.Program, error) {
	id, err := model.ParseID[model.ProgramTag](d.ID)
	if err != nil {
		return nil, err
	}
	brand, err := model.ParseID[model.BrandTag](d.BrandID)
	if err != nil {
		return nil, err
	}
	rate, err := parseDecimal(d.PointsConversionRate)
	if err != nil {
		return nil, err
	}
	minimum, err := parseDecimal(d.MinimumTransactionAmount)
	if err != nil {
		return nil, err
	}
	s := model.ProgramState{
		ID:                       id,
		BrandID:                  brand,
		Name:                     d.Name,
		Type:                     model.ProgramType(d.Type),
		StampThreshold:           d.StampThreshold,
		PointsConversionRate:     rate,
		DailyStampLimit:          d.DailyStampLimit,
		MinimumTransactionAmount: minimum,
		ExpirationPolicy: model.ExpirationPolicyState{
			Kind:       model.ExpirationKind(d.Expiration.Kind),
			PeriodType: model.PeriodType(d.Expiration.PeriodType),
			Period:     d.Expiration.Period,
			Day:        d.Expiration.Day,
			Month:      d.Expiration.Month,
		},
		IsActive:  d.Active,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
		Version:   d.Version,
	}
	if c := d.PointsConfig; c != nil {
		perUnit, err := decimal.NewFromString(c.PointsPerUnit)
		if err != nil {
			return nil, fmt.Errorf("program %s points per unit: %w", d.ID, err)
		}
		s.PointsConfig = &model.PointsConfigState{
			PointsPerUnit:              perUnit,
			MinimumPointsForRedemption: c.MinimumPointsForRedemption,
			RoundingRule:               model.RoundingRule(c.RoundingRule),
			EnrollmentBonusPoints:      c.EnrollmentBonusPoints,
		}
	}

	rewards := make([]*model.Reward, 0, len(d.Rewards))
	for _, r := range d.Rewards {
		rid, err := model.ParseID[model.RewardTag](r.ID)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, model.RehydrateReward(model.RewardState{
			ID:            rid,
			ProgramID:     id,
			Title:         r.Title,
			Description:   r.Description,
			RequiredValue: r.RequiredValue,
			ValidFrom:     utc(r.ValidFrom),
			ValidTo:       utc(r.ValidTo),
			IsActive:      r.Active,
			CreatedAt:     r.CreatedAt.UTC(),
			UpdatedAt:     r.UpdatedAt.UTC(),
		}))
	}
	return model.RehydrateProgram(s, rewards, clock), nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: decimal %q", model.ErrInvalidArgument, *s)
	}
	return &d, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
