package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/hszk-dev/vidtube/internal/domain/repository"
)

// ToggleState reports which side of a toggle the operation landed on.
type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)

// toggle flips a reaction record: if find locates one it is deleted, else
// create inserts a new one. Concurrent double-toggles are resolved by the
// storage layer's uniqueness constraint: a losing insert surfaces as
// ErrDuplicateReaction and is reported as ToggleAdded, since exactly one
// record exists afterwards.
func toggle(ctx context.Context, find func(ctx context.Context) (bool, error), create func(ctx context.Context) error, remove func(ctx context.Context) error) (ToggleState, error) {
	found, err := find(ctx)
	if err != nil {
		return "", fmt.Errorf("find reaction: %w", err)
	}

	if found {
		if err := remove(ctx); err != nil {
			// A concurrent toggle removed it first; the end state is
			// the same either way.
			if errors.Is(err, repository.ErrLikeNotFound) || errors.Is(err, repository.ErrSubscriptionNotFound) {
				return ToggleRemoved, nil
			}
			return "", fmt.Errorf("remove reaction: %w", err)
		}
		return ToggleRemoved, nil
	}

	if err := create(ctx); err != nil {
		if errors.Is(err, repository.ErrDuplicateReaction) {
			return ToggleAdded, nil
		}
		return "", fmt.Errorf("create reaction: %w", err)
	}
	return ToggleAdded, nil
}
