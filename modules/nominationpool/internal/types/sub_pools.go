package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UnbondPool is one era's (or the era-less) slice of unbonding funds,
// holding the same points:balance ratio invariant as the bonded pool
// (spec.md §3, §4.2).
type UnbondPool struct {
	Points  sdk.Int `json:"points"`
	Balance sdk.Int `json:"balance"`
}

// NewUnbondPool returns a zeroed unbond pool.
func NewUnbondPool() UnbondPool {
	return UnbondPool{Points: sdk.ZeroInt(), Balance: sdk.ZeroInt()}
}

// PointsToIssue returns the shares newFunds would mint against this
// sub-pool's own balance/points.
func (u UnbondPool) PointsToIssue(newFunds sdk.Int) sdk.Int {
	return PointsToIssue(u.Balance, u.Points, newFunds)
}

// BalanceToUnbond returns the balance redeemable for delegatorPoints from
// this sub-pool.
func (u UnbondPool) BalanceToUnbond(delegatorPoints sdk.Int) sdk.Int {
	return BalanceToUnbond(u.Balance, u.Points, delegatorPoints)
}

// Issue mints points for newFunds and folds newFunds into the sub-pool's
// balance (spec.md §4.2).
func (u *UnbondPool) Issue(newFunds sdk.Int) sdk.Int {
	issued := u.PointsToIssue(newFunds)
	u.Points = SaturatingAdd(u.Points, issued)
	u.Balance = SaturatingAdd(u.Balance, newFunds)
	return issued
}

// SubPools is the per-bonded-pool family of unbonding sub-pools: one entry
// per era with an active unbond, plus a single era-less pool that absorbs
// entries once they age out (spec.md §3, §4.2).
type SubPools struct {
	NoEra   UnbondPool           `json:"no_era"`
	WithEra map[uint64]UnbondPool `json:"with_era"`
}

// NewSubPools returns an empty set of sub-pools.
func NewSubPools() SubPools {
	return SubPools{NoEra: NewUnbondPool(), WithEra: map[uint64]UnbondPool{}}
}

// MaybeMergePools folds every with-era entry at or before
// currentEra-window into the era-less pool, keeping |WithEra| bounded by
// window (spec.md §4.2, §8 invariant 4). Called before every allocation
// into WithEra so the size bound is structural, not probabilistic.
func (s SubPools) MaybeMergePools(currentEra uint64, window uint64) SubPools {
	if currentEra < window {
		// In the first `window` eras of the chain's life there is nothing
		// to evict yet.
		return s
	}
	newestEraToRemove := currentEra - window

	for era, pool := range s.WithEra {
		if era <= newestEraToRemove {
			s.NoEra.Points = SaturatingAdd(s.NoEra.Points, pool.Points)
			s.NoEra.Balance = SaturatingAdd(s.NoEra.Balance, pool.Balance)
			delete(s.WithEra, era)
		}
	}
	return s
}

// UncheckedWithEraGetOrMake returns the sub-pool for era, creating a zero
// entry if absent. The caller must have called MaybeMergePools first so
// |WithEra| has room for one more entry.
func (s *SubPools) UncheckedWithEraGetOrMake(era uint64) UnbondPool {
	if pool, ok := s.WithEra[era]; ok {
		return pool
	}
	pool := NewUnbondPool()
	s.WithEra[era] = pool
	return pool
}

// SetWithEra writes back a mutated with-era sub-pool.
func (s *SubPools) SetWithEra(era uint64, pool UnbondPool) {
	s.WithEra[era] = pool
}

// RemoveWithEraIfDry deletes the with-era entry for era once its points
// have been fully redeemed (spec.md §3: "an entry is removed when its
// points reach zero").
func (s *SubPools) RemoveWithEraIfDry(era uint64) {
	if pool, ok := s.WithEra[era]; ok && pool.Points.IsZero() {
		delete(s.WithEra, era)
	}
}
