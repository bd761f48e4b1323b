package cards

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// ID is a UUID bound to one kind of entity, so a CardID cannot be passed where a RewardID is expected.
type ID[T any] uuid.UUID

// Tags name the entity an ID belongs to.
type (
	ProgramTag     struct{}
	RewardTag      struct{}
	CardTag        struct{}
	TransactionTag struct{}
	BrandTag       struct{}
	CustomerTag    struct{}
	StoreTag       struct{}
	StaffTag       struct{}
)

type (
	ProgramID     = ID[ProgramTag]
	RewardID      = ID[RewardTag]
	CardID        = ID[CardTag]
	TransactionID = ID[TransactionTag]
	BrandID       = ID[BrandTag]
	CustomerID    = ID[CustomerTag]
	StoreID       = ID[StoreTag]
	StaffID       = ID[StaffTag]
)

func NewID[T any]() ID[T] {
	return ID[T](uuid.New())
}

func ParseID[T any](s string) (ID[T], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, fmt.Errorf("%w: malformed id %q", ErrInvalidArgument, s)
	}
	return ID[T](u), nil
}

func MustParseID[T any](s string) ID[T] {
	id, err := ParseID[T](s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID[T]) UUID() uuid.UUID { return uuid.UUID(id) }

func (id ID[T]) String() string { return uuid.UUID(id).String() }

func (id ID[T]) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID[T]) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*id = ID[T]{}
		return nil
	}
	parsed, err := ParseID[T](string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value stores the id as its canonical string form.
func (id ID[T]) Value() (driver.Value, error) {
	if id.IsZero() {
		return nil, nil
	}
	return id.String(), nil
}

func (id *ID[T]) Scan(src any) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return err
	}
	*id = ID[T](u)
	return nil
}
