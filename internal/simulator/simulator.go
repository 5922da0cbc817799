package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	domainNotification "fuel-sense/internal/domain/notification"
	domainPlan "fuel-sense/internal/domain/plan"
	domainUser "fuel-sense/internal/domain/user"
	domainVessel "fuel-sense/internal/domain/vessel"
	"fuel-sense/internal/logger"
	agentUC "fuel-sense/internal/usecase/agent"
	notificationUC "fuel-sense/internal/usecase/notification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	secondsPerDay = 86400.0

	// marketAlertPct is the absolute price move, in percent, above which a
	// drift tick emits a warning.
	marketAlertPct = 1.5

	// deliveryReminderWindow is how far ahead of a delivery window start the
	// reminder fires.
	deliveryReminderWindow = 2 * time.Hour

	// approvalReminderAge is how long a plan may sit pending approval before
	// the operator is reminded.
	approvalReminderAge = 6 * time.Hour
)

// Config holds the simulator tick intervals.
type Config struct {
	VoyageInterval time.Duration
	MarketInterval time.Duration
	EventsInterval time.Duration
}

// Simulator advances the live-system illusion: linear fuel depletion, random
// market drift and time-based reminders. Each condition alerts once per
// crossing; a watermark per entity suppresses repeats until the condition
// clears.
type Simulator struct {
	cfg        Config
	vesselRepo domainVessel.Repository
	planRepo   domainPlan.Repository
	notifier   *notificationUC.Service
	agents     *agentUC.Service

	mu               sync.Mutex
	rng              *rand.Rand
	deliveryReminded map[uuid.UUID]bool
	arrivalNotified  map[string]bool
	approvalReminded map[uuid.UUID]bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(cfg Config, vesselRepo domainVessel.Repository, planRepo domainPlan.Repository, notifier *notificationUC.Service, agents *agentUC.Service) *Simulator {
	if cfg.VoyageInterval <= 0 {
		cfg.VoyageInterval = 30 * time.Second
	}
	if cfg.MarketInterval <= 0 {
		cfg.MarketInterval = 60 * time.Second
	}
	if cfg.EventsInterval <= 0 {
		cfg.EventsInterval = 60 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Simulator{
		cfg:              cfg,
		vesselRepo:       vesselRepo,
		planRepo:         planRepo,
		notifier:         notifier,
		agents:           agents,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		deliveryReminded: make(map[uuid.UUID]bool),
		arrivalNotified:  make(map[string]bool),
		approvalReminded: make(map[uuid.UUID]bool),
		ctx:              ctx,
		cancel:           cancel,
	}
}

// Start launches the tick loops.
func (s *Simulator) Start() {
	logger.Info("Starting simulator",
		zap.Duration("voyage_interval", s.cfg.VoyageInterval),
		zap.Duration("market_interval", s.cfg.MarketInterval),
		zap.Duration("events_interval", s.cfg.EventsInterval),
	)

	s.wg.Add(3)
	go s.loop(s.cfg.VoyageInterval, func() {
		if err := s.AdvanceVoyages(s.ctx, s.cfg.VoyageInterval); err != nil {
			logger.Warn("Voyage tick failed", zap.Error(err))
		}
	})
	go s.loop(s.cfg.MarketInterval, func() {
		if err := s.DriftMarket(s.ctx); err != nil {
			logger.Warn("Market tick failed", zap.Error(err))
		}
	})
	go s.loop(s.cfg.EventsInterval, func() {
		if err := s.SweepTimedEvents(s.ctx, time.Now()); err != nil {
			logger.Warn("Timed events tick failed", zap.Error(err))
		}
	})
}

// Stop cancels the tick loops and waits for them to drain.
func (s *Simulator) Stop() {
	s.cancel()
	s.wg.Wait()
	logger.Info("Simulator stopped")
}

func (s *Simulator) loop(interval time.Duration, tick func()) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}

// AdvanceVoyages applies linear fuel depletion for the elapsed interval to
// every vessel and nudges the ETA a minute closer when the vessel is moving.
// ROB floors at zero.
func (s *Simulator) AdvanceVoyages(ctx context.Context, elapsed time.Duration) error {
	vessels, err := s.vesselRepo.List(ctx)
	if err != nil {
		return err
	}

	fraction := elapsed.Seconds() / secondsPerDay
	for _, v := range vessels {
		changed := false
		for grade, perDay := range v.EstimatedConsumption {
			rob, ok := v.CurrentROB[grade]
			if !ok || rob <= 0 {
				continue
			}
			rob -= perDay * fraction
			if rob < 0 {
				rob = 0
			}
			v.CurrentROB[grade] = rob
			changed = true
		}

		if v.SpeedKnots > 0 && !v.ETA.IsZero() {
			v.ETA = v.ETA.Add(-time.Minute)
			changed = true
		}

		if !changed {
			continue
		}
		if err := s.vesselRepo.Update(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

// DriftMarket jitters every open plan's price by a uniform multiplier in
// [0.98, 1.02] and warns when the move exceeds the alert threshold. Moves
// are independent per plan.
func (s *Simulator) DriftMarket(ctx context.Context) error {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, p := range plans {
		if p.Status != domainPlan.StatusPendingApproval && p.Status != domainPlan.StatusApproved {
			continue
		}

		s.mu.Lock()
		multiplier := 0.98 + s.rng.Float64()*0.04
		s.mu.Unlock()

		oldPrice := p.PricePerMT
		p.PricePerMT = oldPrice.Mul(decimal.NewFromFloat(multiplier)).Round(2)
		p.TotalCost = p.ComputeTotalCost()

		if err := s.planRepo.Update(ctx, p); err != nil {
			return err
		}

		deltaPct := (multiplier - 1) * 100
		if deltaPct > marketAlertPct || deltaPct < -marketAlertPct {
			direction := "up"
			magnitude := deltaPct
			if deltaPct < 0 {
				direction = "down"
				magnitude = -deltaPct
			}
			message := fmt.Sprintf("%s price at %s moved %s %.1f%% to %s USD/MT", p.FuelGrade, p.Port, direction, magnitude, p.PricePerMT.StringFixed(2))
			s.notify(ctx, domainNotification.TypeWarning, domainUser.RoleOperator, "Market Price Movement", message)
		}
	}
	return nil
}

// SweepTimedEvents runs the three reminder sweeps against the given clock:
// delivery windows opening soon, ETAs that have passed, and plans stuck
// pending approval.
func (s *Simulator) SweepTimedEvents(ctx context.Context, now time.Time) error {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, p := range plans {
		// Reminders cover every open plan; rejected and completed plans no
		// longer have an actionable delivery window.
		if p.Status == domainPlan.StatusPendingApproval || p.Status == domainPlan.StatusApproved {
			until := p.DeliveryStart.Sub(now)
			if until > 0 && until <= deliveryReminderWindow && s.mark(s.deliveryReminded, p.ID) {
				message := fmt.Sprintf("Bunker delivery at %s from %s starts in %d minutes", p.Port, p.Supplier, int(until.Minutes()))
				s.notify(ctx, domainNotification.TypeInfo, domainUser.RoleOperator, "Delivery Window Opening", message)
			}
		}

		if p.Status == domainPlan.StatusPendingApproval {
			age := now.Sub(p.CreatedAt)
			if age > approvalReminderAge && s.mark(s.approvalReminded, p.ID) {
				message := fmt.Sprintf("Bunker plan for %s at %s has been pending approval for %d hours", p.Supplier, p.Port, int(age.Hours()))
				s.notify(ctx, domainNotification.TypeWarning, domainUser.RoleOperator, "Approval Overdue", message)
			}
		}
	}

	vessels, err := s.vesselRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, v := range vessels {
		if v.ETA.IsZero() {
			continue
		}
		if now.After(v.ETA) {
			if s.markString(s.arrivalNotified, v.IMO) {
				message := fmt.Sprintf("%s has reached its ETA at %s", v.Name, v.NextPort)
				s.notify(ctx, domainNotification.TypeInfo, domainUser.RoleOperator, "Vessel Arrived", message)
			}
		} else {
			// ETA moved back into the future; re-arm the arrival notice.
			s.unmarkString(s.arrivalNotified, v.IMO)
		}
	}
	return nil
}

// RunAnalysis is the simulator-driven analysis entry point: a 2-3s random
// delay instead of the fixed one, plus a bulk kickoff notification.
func (s *Simulator) RunAnalysis(ctx context.Context, cargoIDs []uuid.UUID) error {
	if s.agents == nil {
		return nil
	}

	s.mu.Lock()
	delay := 2*time.Second + time.Duration(s.rng.Float64()*float64(time.Second))
	s.mu.Unlock()

	runs, err := s.agents.TriggerAnalysis(ctx, cargoIDs, delay)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Bunker analysis started for %d cargoes", len(runs))
	s.notify(ctx, domainNotification.TypeInfo, domainUser.RoleCharterer, "Analysis Started", message)
	return nil
}

func (s *Simulator) notify(ctx context.Context, nType domainNotification.Type, role domainUser.Role, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, nType, role, title, message, false, ""); err != nil {
		logger.Warn("Failed to emit simulator notification", zap.Error(err))
	}
}

// mark records a watermark and reports whether it was newly set.
func (s *Simulator) mark(m map[uuid.UUID]bool, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m[id] {
		return false
	}
	m[id] = true
	return true
}

func (s *Simulator) markString(m map[string]bool, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m[key] {
		return false
	}
	m[key] = true
	return true
}

func (s *Simulator) unmarkString(m map[string]bool, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(m, key)
}
