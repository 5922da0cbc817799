package ingestion

import (
	"encoding/json"

	domainNotification "fuel-sense/internal/domain/notification"
	"fuel-sense/internal/events"
	"fuel-sense/internal/logger"
	pkgmqtt "fuel-sense/pkg/mqtt"

	"go.uber.org/zap"
)

// AlertPublisher relays urgent notifications from the event bus to an MQTT
// alerts topic so external systems can react without polling the API.
type AlertPublisher struct {
	client *pkgmqtt.Client
	topic  string
	qos    byte
	stop   func()
	done   chan struct{}
}

func NewAlertPublisher(client *pkgmqtt.Client, topic string, qos byte) *AlertPublisher {
	return &AlertPublisher{
		client: client,
		topic:  topic,
		qos:    qos,
		done:   make(chan struct{}),
	}
}

// Start subscribes to the bus and relays urgent notifications until Stop.
func (p *AlertPublisher) Start(bus *events.Bus) {
	ch, unsubscribe := bus.Subscribe()
	p.stop = unsubscribe

	go func() {
		defer close(p.done)
		for event := range ch {
			if event.Type != events.EventNotification {
				continue
			}
			n, ok := event.Payload.(*domainNotification.Notification)
			if !ok || n.Type != domainNotification.TypeUrgent {
				continue
			}
			payload, err := json.Marshal(n)
			if err != nil {
				logger.Warn("Failed to encode alert", zap.Error(err))
				continue
			}
			if err := p.client.Publish(p.topic, p.qos, payload); err != nil {
				logger.Warn("Failed to publish alert",
					zap.String("topic", p.topic),
					zap.Error(err),
				)
			}
		}
	}()
}

// Stop unsubscribes from the bus and waits for the relay to drain.
func (p *AlertPublisher) Stop() {
	if p.stop != nil {
		p.stop()
		<-p.done
	}
}
