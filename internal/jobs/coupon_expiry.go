// Package jobs runs scheduled maintenance for the admin back office.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron"
)

// CouponExpirer switches off coupons whose window has closed.
type CouponExpirer interface {
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
}

type Scheduler struct {
	c *cron.Cron
}

// NewScheduler registers the coupon expiry sweep under spec (robfig/cron
// syntax, e.g. "@midnight"). An empty spec schedules nothing.
func NewScheduler(spec string, coupons CouponExpirer) (*Scheduler, error) {
	c := cron.New()
	if spec != "" {
		if err := c.AddFunc(spec, func() { SweepExpiredCoupons(context.Background(), coupons, time.Now()) }); err != nil {
			return nil, fmt.Errorf("schedule coupon expiry %q: %w", spec, err)
		}
	}
	return &Scheduler{c: c}, nil
}

func (s *Scheduler) Start() { s.c.Start() }
func (s *Scheduler) Stop()  { s.c.Stop() }

// SweepExpiredCoupons runs one expiry pass and logs the outcome.
func SweepExpiredCoupons(ctx context.Context, coupons CouponExpirer, now time.Time) int64 {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := coupons.ExpireEnded(ctx, now.UTC())
	if err != nil {
		log.Printf("[jobs] coupon expiry failed: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[jobs] coupon expiry: %d coupon(s) switched off", n)
	}
	return n
}
