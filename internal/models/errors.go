package cards

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package wraps exactly one of them.
var (
	// malformed input, safe to retry after correcting it
	ErrInvalidArgument = errors.New("loyalty: invalid argument")
	// business rule or state violation
	ErrInvalidOperation = errors.New("loyalty: invalid operation")
)

// Storage errors.
var (
	ErrNotFound         = errors.New("loyalty: not found")
	ErrConcurrentUpdate = errors.New("loyalty: concurrent update")
)

var (
	ErrWrongProgramType        = fmt.Errorf("%w: operation does not match program type", ErrInvalidOperation)
	ErrProgramInactive         = fmt.Errorf("%w: program is not active", ErrInvalidOperation)
	ErrBelowMinimumAmount      = fmt.Errorf("%w: transaction amount below program minimum", ErrInvalidOperation)
	ErrDailyStampLimitExceeded = fmt.Errorf("%w: daily stamp limit exceeded", ErrInvalidOperation)
	ErrBelowMinimumRedemption  = fmt.Errorf("%w: balance below minimum points for redemption", ErrInvalidOperation)
	ErrNoPointsEarned          = fmt.Errorf("%w: transaction earns no points", ErrInvalidOperation)

	ErrWrongCardType         = fmt.Errorf("%w: operation does not match card type", ErrInvalidOperation)
	ErrCardNotActive         = fmt.Errorf("%w: card is not active", ErrInvalidOperation)
	ErrInvalidTransition     = fmt.Errorf("%w: invalid card status transition", ErrInvalidOperation)
	ErrInsufficientBalance   = fmt.Errorf("%w: insufficient balance", ErrInvalidOperation)
	ErrRewardProgramMismatch = fmt.Errorf("%w: reward belongs to another program", ErrInvalidOperation)
	ErrRewardNotEligible     = fmt.Errorf("%w: reward is not redeemable now", ErrInvalidOperation)
)

func invalidArgument(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, field, reason)
}
