package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainAgent "fuel-sense/internal/domain/agent"
	domainCargo "fuel-sense/internal/domain/cargo"
	domainNotification "fuel-sense/internal/domain/notification"
	domainUser "fuel-sense/internal/domain/user"
	"fuel-sense/internal/events"
	"fuel-sense/internal/logger"
	notificationUC "fuel-sense/internal/usecase/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const agentName = "bunker-analysis"

// DefaultAnalysisDelay is how long a triggered run stays in the running
// state before completing.
const DefaultAnalysisDelay = 2 * time.Second

// Service implements analysis run use cases. Completion timers are owned by
// the service and cancelled on Stop, so a shutdown or a replaced run never
// leaves a stray callback mutating state.
type Service struct {
	runRepo   domainAgent.Repository
	cargoRepo domainCargo.Repository
	notifier  *notificationUC.Service
	bus       *events.Bus

	mu      sync.Mutex
	timers  map[uuid.UUID]*time.Timer
	stopped bool
}

func NewService(runRepo domainAgent.Repository, cargoRepo domainCargo.Repository, notifier *notificationUC.Service, bus *events.Bus) *Service {
	return &Service{
		runRepo:   runRepo,
		cargoRepo: cargoRepo,
		notifier:  notifier,
		bus:       bus,
		timers:    make(map[uuid.UUID]*time.Timer),
	}
}

func (s *Service) Get(ctx context.Context, runID uuid.UUID) (*domainAgent.Run, error) {
	return s.runRepo.GetByID(ctx, runID)
}

func (s *Service) List(ctx context.Context) ([]*domainAgent.Run, error) {
	return s.runRepo.List(ctx)
}

func (s *Service) ListByCargo(ctx context.Context, cargoID uuid.UUID) ([]*domainAgent.Run, error) {
	return s.runRepo.ListByCargo(ctx, cargoID)
}

// TriggerAnalysis starts a run per cargo and schedules its completion after
// the given delay. Unknown cargo ids are skipped; if every id is unknown the
// call fails. The completed run echoes the cargo's precomputed confidence
// and recommendation.
func (s *Service) TriggerAnalysis(ctx context.Context, cargoIDs []uuid.UUID, delay time.Duration) ([]*domainAgent.Run, error) {
	if delay <= 0 {
		delay = DefaultAnalysisDelay
	}

	var runs []*domainAgent.Run
	for _, cargoID := range cargoIDs {
		c, err := s.cargoRepo.GetByID(ctx, cargoID)
		if err != nil {
			logger.Warn("Skipping analysis for unknown cargo", zap.String("cargo_id", cargoID.String()))
			continue
		}

		run := &domainAgent.Run{
			AgentName: agentName,
			CargoID:   c.ID,
			Status:    domainAgent.StatusRunning,
			StartedAt: time.Now(),
		}
		if err := s.runRepo.Create(ctx, run); err != nil {
			return nil, err
		}

		if c.Status == domainCargo.StatusReadyForDecision {
			c.Status = domainCargo.StatusPendingAnalysis
			if err := s.cargoRepo.Update(ctx, c); err != nil {
				return nil, err
			}
		}

		s.schedule(run.ID, delay)
		runs = append(runs, run)

		if s.bus != nil {
			s.bus.Publish(events.Event{Type: events.EventAnalysisUpdate, Payload: run})
		}
	}

	if len(runs) == 0 {
		return nil, domainCargo.ErrCargoNotFound
	}

	logger.Info("Analysis triggered",
		zap.Int("runs", len(runs)),
		zap.Duration("delay", delay),
	)
	return runs, nil
}

func (s *Service) schedule(runID uuid.UUID, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.timers[runID] = time.AfterFunc(delay, func() {
		s.completeRun(runID, delay)
	})
}

// completeRun flips a run to completed with fixture-derived results. The
// status check guards against a run that was replaced or already finished
// while the timer was pending.
func (s *Service) completeRun(runID uuid.UUID, execution time.Duration) {
	s.mu.Lock()
	delete(s.timers, runID)
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return
	}

	ctx := context.Background()

	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil || run.Status != domainAgent.StatusRunning {
		return
	}

	c, err := s.cargoRepo.GetByID(ctx, run.CargoID)
	if err != nil {
		return
	}

	now := time.Now()
	run.Status = domainAgent.StatusCompleted
	run.Confidence = c.Confidence
	run.Execution = execution
	run.CompletedAt = &now
	run.DataQuality = "fixture"
	run.Output = buildOutput(c)

	if err := s.runRepo.Update(ctx, run); err != nil {
		logger.Warn("Failed to complete analysis run", zap.Error(err))
		return
	}

	if c.Status == domainCargo.StatusPendingAnalysis {
		c.Status = domainCargo.StatusReadyForDecision
		if err := s.cargoRepo.Update(ctx, c); err != nil {
			logger.Warn("Failed to mark cargo ready for decision", zap.Error(err))
		}
	}

	logger.Info("Analysis run completed",
		zap.String("run_id", runID.String()),
		zap.String("cargo_id", run.CargoID.String()),
		zap.Int("confidence", run.Confidence),
	)

	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.EventAnalysisUpdate, Payload: run})
	}

	if s.notifier != nil {
		message := fmt.Sprintf("Bunker analysis for %s to %s finished with %d%% confidence", c.LoadPort, c.DischargePort, run.Confidence)
		if err := s.notifier.Notify(ctx, domainNotification.TypeInfo, domainUser.RoleCharterer, "Analysis Completed", message, false, "/cargoes/"+c.ID.String()); err != nil {
			logger.Warn("Failed to emit analysis notification", zap.Error(err))
		}
	}
}

// Stop cancels every pending completion timer.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for runID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, runID)
	}
}

func buildOutput(c *domainCargo.Cargo) *domainAgent.Output {
	out := &domainAgent.Output{Viable: c.Viable}
	if len(c.BunkerPorts) > 0 {
		best := c.BunkerPorts[0]
		out.RecommendedPort = best.Port
		out.RecommendedSupplier = best.Supplier
	}
	for _, reason := range c.Reasoning {
		out.Findings = append(out.Findings, domainAgent.Finding{Label: "analysis", Detail: reason})
	}
	return out
}
