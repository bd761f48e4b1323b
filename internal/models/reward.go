package cards

import (
	"strings"
	"time"
)

// Reward is a redeemable item of a program, priced in stamps or points.
type Reward struct {
	id            RewardID
	programID     ProgramID
	title         string
	description   string
	requiredValue int
	validFrom     *time.Time
	validTo       *time.Time
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
	clock         Clock
}

// RewardDetails are the editable attributes of a reward.
type RewardDetails struct {
	Title         string
	Description   string
	RequiredValue int
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

func (d RewardDetails) validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return invalidArgument("title", "is required")
	}
	if d.RequiredValue <= 0 {
		return invalidArgument("required value", "must be positive")
	}
	if d.ValidFrom != nil && d.ValidTo != nil && d.ValidFrom.After(*d.ValidTo) {
		return invalidArgument("validity window", "starts after it ends")
	}
	return nil
}

// clock is shared with the owning program
func newReward(programID ProgramID, d RewardDetails, clock Clock) (*Reward, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	clock = clockOrSystem(clock)
	now := clock.Now()
	return &Reward{
		id:            NewID[RewardTag](),
		programID:     programID,
		title:         strings.TrimSpace(d.Title),
		description:   d.Description,
		requiredValue: d.RequiredValue,
		validFrom:     copyPtr(d.ValidFrom),
		validTo:       copyPtr(d.ValidTo),
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
		clock:         clock,
	}, nil
}

func (r *Reward) ID() RewardID { return r.id }

func (r *Reward) ProgramID() ProgramID { return r.programID }

func (r *Reward) Title() string { return r.title }

func (r *Reward) Description() string { return r.description }

func (r *Reward) RequiredValue() int { return r.requiredValue }

func (r *Reward) ValidFrom() *time.Time { return copyPtr(r.validFrom) }

func (r *Reward) ValidTo() *time.Time { return copyPtr(r.validTo) }

func (r *Reward) IsActive() bool { return r.isActive }

func (r *Reward) CreatedAt() time.Time { return r.createdAt }

func (r *Reward) UpdatedAt() time.Time { return r.updatedAt }

// IsValidAt reports whether the reward is active and t falls inside its window.
// Missing bounds are open.
func (r *Reward) IsValidAt(t time.Time) bool {
	if !r.isActive {
		return false
	}
	if r.validFrom != nil && t.Before(*r.validFrom) {
		return false
	}
	if r.validTo != nil && t.After(*r.validTo) {
		return false
	}
	return true
}

func (r *Reward) Update(d RewardDetails) error {
	if err := d.validate(); err != nil {
		return err
	}
	r.title = strings.TrimSpace(d.Title)
	r.description = d.Description
	r.requiredValue = d.RequiredValue
	r.validFrom = copyPtr(d.ValidFrom)
	r.validTo = copyPtr(d.ValidTo)
	r.updatedAt = r.clock.Now()
	return nil
}

func (r *Reward) Activate() {
	r.isActive = true
	r.updatedAt = r.clock.Now()
}

func (r *Reward) Deactivate() {
	r.isActive = false
	r.updatedAt = r.clock.Now()
}

// RewardState is the persisted form of a Reward.
type RewardState struct {
	ID            RewardID
	ProgramID     ProgramID
	Title         string
	Description   string
	RequiredValue int
	ValidFrom     *time.Time
	ValidTo       *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *Reward) State() RewardState {
	return RewardState{
		ID:            r.id,
		ProgramID:     r.programID,
		Title:         r.title,
		Description:   r.description,
		RequiredValue: r.requiredValue,
		ValidFrom:     r.ValidFrom(),
		ValidTo:       r.ValidTo(),
		IsActive:      r.isActive,
		CreatedAt:     r.createdAt,
		UpdatedAt:     r.updatedAt,
	}
}

// RehydrateReward restores a stored reward. RehydrateProgram replaces its clock with the program's one.
func RehydrateReward(s RewardState) *Reward {
	return &Reward{
		id:            s.ID,
		programID:     s.ProgramID,
		title:         s.Title,
		description:   s.Description,
		requiredValue: s.RequiredValue,
		validFrom:     copyPtr(s.ValidFrom),
		validTo:       copyPtr(s.ValidTo),
		isActive:      s.IsActive,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		clock:         SystemClock{},
	}
}
