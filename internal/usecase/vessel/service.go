package vessel

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainNotification "fuel-sense/internal/domain/notification"
	domainUser "fuel-sense/internal/domain/user"
	domainVessel "fuel-sense/internal/domain/vessel"
	"fuel-sense/internal/events"
	"fuel-sense/internal/logger"
	notificationUC "fuel-sense/internal/usecase/notification"

	"go.uber.org/zap"
)

// LowROBThresholdMT is the VLSFO level below which the operator is alerted.
const LowROBThresholdMT = 200.0

// Service implements fleet use cases. It tracks which vessels have already
// been alerted for low ROB so the alert fires once per threshold crossing
// and re-arms when stock recovers.
type Service struct {
	vesselRepo domainVessel.Repository
	notifier   *notificationUC.Service
	bus        *events.Bus

	mu            sync.Mutex
	lowROBAlerted map[string]bool
}

func NewService(vesselRepo domainVessel.Repository, notifier *notificationUC.Service, bus *events.Bus) *Service {
	return &Service{
		vesselRepo:    vesselRepo,
		notifier:      notifier,
		bus:           bus,
		lowROBAlerted: make(map[string]bool),
	}
}

func (s *Service) Get(ctx context.Context, imo string) (*domainVessel.Vessel, error) {
	return s.vesselRepo.GetByIMO(ctx, imo)
}

func (s *Service) List(ctx context.Context) ([]*domainVessel.Vessel, error) {
	return s.vesselRepo.List(ctx)
}

// UpdateROB merges partial per-grade quantities into a vessel's remaining
// fuel. Negative quantities and unknown grades are rejected before any
// state changes.
func (s *Service) UpdateROB(ctx context.Context, imo string, rob map[domainVessel.FuelGrade]float64) (*domainVessel.Vessel, error) {
	for grade, qty := range rob {
		if !grade.Valid() {
			return nil, domainVessel.ErrInvalidGrade
		}
		if qty < 0 {
			return nil, domainVessel.ErrInvalidROB
		}
	}

	v, err := s.vesselRepo.GetByIMO(ctx, imo)
	if err != nil {
		return nil, err
	}

	if v.CurrentROB == nil {
		v.CurrentROB = make(map[domainVessel.FuelGrade]float64)
	}
	for grade, qty := range rob {
		v.CurrentROB[grade] = qty
	}

	if err := s.vesselRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	updated, err := s.vesselRepo.GetByIMO(ctx, imo)
	if err != nil {
		return nil, err
	}

	logger.Info("Vessel ROB updated",
		zap.String("imo", imo),
		zap.Float64("vlsfo", updated.CurrentROB[domainVessel.GradeVLSFO]),
		zap.Float64("lsmgo", updated.CurrentROB[domainVessel.GradeLSMGO]),
	)

	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.EventVesselUpdate, Payload: updated})
	}

	s.checkLowROB(ctx, updated)
	return updated, nil
}

// UpdatePosition merges a position report into a vessel.
func (s *Service) UpdatePosition(ctx context.Context, imo string, pos domainVessel.Position, speedKnots, headingDeg float64, nextPort string, eta time.Time) (*domainVessel.Vessel, error) {
	v, err := s.vesselRepo.GetByIMO(ctx, imo)
	if err != nil {
		return nil, err
	}

	v.Position = pos
	v.SpeedKnots = speedKnots
	v.HeadingDeg = headingDeg
	if nextPort != "" {
		v.NextPort = nextPort
	}
	if !eta.IsZero() {
		v.ETA = eta
	}

	if err := s.vesselRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	updated, err := s.vesselRepo.GetByIMO(ctx, imo)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(events.Event{Type: events.EventVesselUpdate, Payload: updated})
	}
	return updated, nil
}

// checkLowROB alerts the operator the first time VLSFO drops below the
// threshold and re-arms once it recovers above it.
func (s *Service) checkLowROB(ctx context.Context, v *domainVessel.Vessel) {
	vlsfo, tracked := v.CurrentROB[domainVessel.GradeVLSFO]
	if !tracked {
		return
	}

	s.mu.Lock()
	alerted := s.lowROBAlerted[v.IMO]
	if vlsfo >= LowROBThresholdMT {
		if alerted {
			delete(s.lowROBAlerted, v.IMO)
		}
		s.mu.Unlock()
		return
	}
	if alerted {
		s.mu.Unlock()
		return
	}
	s.lowROBAlerted[v.IMO] = true
	s.mu.Unlock()

	if s.notifier == nil {
		return
	}

	message := fmt.Sprintf("%s VLSFO at %.1f MT, below the %.0f MT safety threshold", v.Name, vlsfo, LowROBThresholdMT)
	if err := s.notifier.Notify(ctx, domainNotification.TypeUrgent, domainUser.RoleOperator, "Low Fuel Alert", message, true, "/vessels/"+v.IMO); err != nil {
		logger.Warn("Failed to emit low ROB notification", zap.Error(err))
	}
}
