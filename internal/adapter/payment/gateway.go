// Package payment holds the in-process payment gateway used when no real
// processor is wired in. It approves charges up to a policy limit and hands
// back a generated transaction reference, which is enough for the engine:
// the engine treats every declined charge the same and only relays the
// gateway's reason.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrAmountOverLimit = errors.New("amount exceeds the per-charge policy limit")

type SandboxGateway struct {
	maxCharge float64
}

func NewSandboxGateway(maxCharge float64) *SandboxGateway {
	return &SandboxGateway{maxCharge: maxCharge}
}

func (g *SandboxGateway) Charge(ctx context.Context, userID uuid.UUID, amount float64, description string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if amount < 0 {
		return "", fmt.Errorf("invalid charge amount %.2f", amount)
	}
	if g.maxCharge > 0 && amount > g.maxCharge {
		return "", ErrAmountOverLimit
	}
	return "txn_" + uuid.NewString(), nil
}
