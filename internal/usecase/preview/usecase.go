// Package preview serves EMI previews. The engine is pure and
// deterministic, so results are cached in redis keyed by the exact
// (principal, tenure, rate) triple; a cache outage degrades to
// recomputing.
package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DevKrishnasai/fundifyhub-sub001/internal/emi"
)

type Usecase struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewUsecase accepts a nil client; previews then always compute.
func NewUsecase(rdb *redis.Client, ttl time.Duration) *Usecase {
	return &Usecase{rdb: rdb, ttl: ttl}
}

func (u *Usecase) Preview(ctx context.Context, principal, annualRatePercent float64, tenureMonths int) (*emi.Preview, error) {
	if err := emi.ValidateTerms(principal, annualRatePercent, tenureMonths); err != nil {
		return nil, err
	}

	key := cacheKey(principal, annualRatePercent, tenureMonths)
	if u.rdb != nil {
		if b, err := u.rdb.Get(ctx, key).Bytes(); err == nil {
			var p emi.Preview
			if json.Unmarshal(b, &p) == nil {
				return &p, nil
			}
		}
	}

	// Date-only anchor keeps cached and fresh schedules identical
	// within a day.
	start := time.Now().UTC().Truncate(24 * time.Hour)
	p, err := emi.ComputeSchedule(principal, annualRatePercent, tenureMonths, start)
	if err != nil {
		return nil, err
	}

	if u.rdb != nil {
		if b, err := json.Marshal(p); err == nil {
			_ = u.rdb.Set(ctx, key, b, u.ttl).Err()
		}
	}
	return p, nil
}

func cacheKey(principal, ratePercent float64, tenureMonths int) string {
	return fmt.Sprintf("emi:preview:%.2f:%d:%.4f", principal, tenureMonths, ratePercent)
}
