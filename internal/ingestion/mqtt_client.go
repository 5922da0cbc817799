package ingestion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domainVessel "fuel-sense/internal/domain/vessel"
	"fuel-sense/internal/logger"
	vesselUC "fuel-sense/internal/usecase/vessel"
	pkgmqtt "fuel-sense/pkg/mqtt"

	"go.uber.org/zap"
)

// MQTTIngestionConfig describes the topics and MQTT connection parameters.
type MQTTIngestionConfig struct {
	ClientConfig  *pkgmqtt.Config
	ROBTopic      string
	PositionTopic string
	QoS           byte
}

// MQTTIngestionClient wires vessel telemetry messages into the fleet service.
type MQTTIngestionClient struct {
	cfg     *MQTTIngestionConfig
	client  *pkgmqtt.Client
	vessels *vesselUC.Service
	metrics *MetricsTracker

	mu            sync.Mutex
	started       bool
	subscriptions []string
}

// NewMQTTIngestionClient builds a new MQTT client for telemetry ingestion.
func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, vessels *vesselUC.Service) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if vessels == nil {
		return nil, errors.New("vessel service is required")
	}

	client := pkgmqtt.NewClient(cfg.ClientConfig)
	return &MQTTIngestionClient{
		cfg:     cfg,
		client:  client,
		vessels: vessels,
		metrics: NewMetricsTracker(),
	}, nil
}

// Start establishes the MQTT connection and subscribes to the topics.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	type subscription struct {
		topic   string
		handler pkgmqtt.MessageHandler
	}

	subs := []subscription{}
	if c.cfg.ROBTopic != "" {
		subs = append(subs, subscription{
			topic:   c.cfg.ROBTopic,
			handler: c.handleROBMessage,
		})
	}
	if c.cfg.PositionTopic != "" {
		subs = append(subs, subscription{
			topic:   c.cfg.PositionTopic,
			handler: c.handlePositionMessage,
		})
	}

	if len(subs) == 0 {
		return errors.New("no MQTT topics configured for ingestion")
	}

	qos := c.cfg.QoS
	for _, sub := range subs {
		if err := c.client.Subscribe(sub.topic, qos, sub.handler); err != nil {
			c.client.Disconnect()
			return fmt.Errorf("subscribe failed for topic %s: %w", sub.topic, err)
		}
		c.subscriptions = append(c.subscriptions, sub.topic)
		logger.Info("Listening for telemetry", zap.String("topic", sub.topic))
	}

	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker.
func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if len(c.subscriptions) > 0 {
		if err := c.client.Unsubscribe(c.subscriptions...); err != nil {
			logger.Warn("Failed to unsubscribe from MQTT topics", zap.Error(err))
		}
	}

	c.client.Disconnect()
	c.started = false
	c.subscriptions = nil
}

// Metrics returns a snapshot of ingest counters.
func (c *MQTTIngestionClient) Metrics() IngestMetrics {
	return c.metrics.Snapshot()
}

// handleROBMessage decodes an ROB report and applies it to the fleet.
func (c *MQTTIngestionClient) handleROBMessage(_ string, payload []byte) {
	c.metrics.Update(func(m *IngestMetrics) {
		m.MessagesReceived++
		m.LastMessageAt = time.Now()
	})

	msg, err := ParseROBReport(payload)
	if err != nil {
		logger.Warn("Invalid ROB payload", zap.Error(err))
		c.metrics.Update(func(m *IngestMetrics) { m.MessagesFailed++ })
		return
	}

	rob := make(map[domainVessel.FuelGrade]float64, len(msg.ROB))
	for grade, qty := range msg.ROB {
		rob[domainVessel.FuelGrade(grade)] = qty
	}

	if _, err := c.vessels.UpdateROB(context.Background(), msg.IMO, rob); err != nil {
		logger.Warn("Failed to apply ROB report",
			zap.String("imo", msg.IMO),
			zap.Error(err),
		)
		c.metrics.Update(func(m *IngestMetrics) { m.MessagesFailed++ })
		return
	}

	c.metrics.Update(func(m *IngestMetrics) { m.MessagesApplied++ })
}

// handlePositionMessage decodes a position report and applies it to the fleet.
func (c *MQTTIngestionClient) handlePositionMessage(_ string, payload []byte) {
	c.metrics.Update(func(m *IngestMetrics) {
		m.MessagesReceived++
		m.LastMessageAt = time.Now()
	})

	msg, err := ParsePositionReport(payload)
	if err != nil {
		logger.Warn("Invalid position payload", zap.Error(err))
		c.metrics.Update(func(m *IngestMetrics) { m.MessagesFailed++ })
		return
	}

	pos := domainVessel.Position{Lat: msg.Lat, Lon: msg.Lon}
	if _, err := c.vessels.UpdatePosition(context.Background(), msg.IMO, pos, msg.SpeedKnots, msg.HeadingDeg, msg.NextPort, msg.ETA); err != nil {
		logger.Warn("Failed to apply position report",
			zap.String("imo", msg.IMO),
			zap.Error(err),
		)
		c.metrics.Update(func(m *IngestMetrics) { m.MessagesFailed++ })
		return
	}

	c.metrics.Update(func(m *IngestMetrics) { m.MessagesApplied++ })
}
