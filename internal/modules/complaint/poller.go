package complaint

import (
	"context"
	"time"

	"go.uber.org/zap"

	"servicehub/internal/domain"
)

// Poller refreshes the caller's complaint list on an interval, the way the
// dashboard keeps admin responses current without a realtime channel. A
// failed refresh is logged and retried on the next tick.
type Poller struct {
	svc      *Service
	interval time.Duration
	onUpdate func([]domain.Complaint)
	log      *zap.Logger
}

func NewPoller(svc *Service, interval time.Duration, onUpdate func([]domain.Complaint), log *zap.Logger) *Poller {
	return &Poller{
		svc:      svc,
		interval: interval,
		onUpdate: onUpdate,
		log:      log,
	}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			complaints, err := p.svc.List(ctx)
			if err != nil {
				p.log.Warn("complaint refresh failed", zap.Error(err))
				continue
			}
			p.onUpdate(complaints)
		}
	}
}
