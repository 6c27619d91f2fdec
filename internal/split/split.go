// Package split computes how a shared expense amount is allocated
// across its participants.
//
// The package is pure, persisting the resulting shares is the caller's
// job.
package split

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// epsilon is the maximum deviation between the sum of explicit shares
// and the total that is still accepted, in currency units.
var epsilon = decimal.New(1, -2)

// Participant is one person taking part in a shared expense.
// Share is the explicitly requested amount; when it is not set, the
// participant takes part in an equal split.
type Participant struct {
	PersonID uuid.UUID
	Share    decimal.NullDecimal
}

// Share is the finalized allocation for one participant.
type Share struct {
	PersonID uuid.UUID
	Amount   decimal.Decimal
}

var (
	ErrNoParticipants   = errors.New("a split needs at least one participant")
	ErrTotalNotPositive = errors.New("the total amount of a split must be positive")
	ErrMixedShares      = errors.New("either all participants must have an explicit share or none of them")
)

// MismatchError reports that the explicit shares of a split do not add
// up to the total amount.
type MismatchError struct {
	Total decimal.Decimal // The total amount that was split
	Sum   decimal.Decimal // The sum of the explicit shares
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("the shares sum to %s, but the total amount is %s (difference of %s)", e.Sum, e.Total, e.Delta())
}

// Delta returns the difference between the total and the share sum.
func (e MismatchError) Delta() decimal.Decimal {
	return e.Total.Sub(e.Sum)
}

// Allocate computes the final share for every participant, in input
// order.
//
// When every participant has an explicit share, the shares are taken as
// they are and only validated against the total: a deviation of more
// than epsilon (0.01) fails with a MismatchError.
//
// When no participant has an explicit share, the total is split evenly.
// Every share is rounded down to a whole cent and the residual cents go
// to the first participant, so the shares always sum to exactly the
// total.
//
// Mixing explicit and implicit shares in one call is not supported.
func Allocate(total decimal.Decimal, participants []Participant) ([]Share, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	if !total.IsPositive() {
		return nil, ErrTotalNotPositive
	}

	explicit := 0
	for _, p := range participants {
		if p.Share.Valid {
			explicit++
		}
	}

	switch explicit {
	case len(participants):
		return explicitShares(total, participants)
	case 0:
		return equalShares(total, participants), nil
	default:
		return nil, ErrMixedShares
	}
}

func explicitShares(total decimal.Decimal, participants []Participant) ([]Share, error) {
	shares := make([]Share, 0, len(participants))

	sum := decimal.Zero
	for _, p := range participants {
		sum = sum.Add(p.Share.Decimal)
		shares = append(shares, Share{PersonID: p.PersonID, Amount: p.Share.Decimal})
	}

	if total.Sub(sum).Abs().GreaterThan(epsilon) {
		return nil, MismatchError{Total: total, Sum: sum}
	}

	return shares, nil
}

func equalShares(total decimal.Decimal, participants []Participant) []Share {
	n := decimal.NewFromInt(int64(len(participants)))

	// Round down to whole cents
	each := total.Div(n).RoundDown(2)

	shares := make([]Share, 0, len(participants))
	for _, p := range participants {
		shares = append(shares, Share{PersonID: p.PersonID, Amount: each})
	}

	// The residual cents go to the first participant
	shares[0].Amount = shares[0].Amount.Add(total.Sub(each.Mul(n)))

	return shares
}
