// Package events fans dashboard activity out over MQTT so wallboard screens
// can follow the feed without polling the API.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-demand-ops/internal/models"
)

const connectTimeout = 5 * time.Second

// Publisher publishes notification and audit events to an MQTT broker.
// A nil Publisher is valid and drops every event, so callers never need to
// guard the no-broker case.
type Publisher struct {
	client mqtt.Client
	prefix string
	log    *logrus.Logger
}

// NewPublisher connects to the broker and returns a publisher. An empty
// broker URL yields a nil publisher and no error.
func NewPublisher(broker, prefix string, log *logrus.Logger) (*Publisher, error) {
	if broker == "" {
		return nil, nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(fmt.Sprintf("demand-ops-%d", time.Now().UnixNano())).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt broker %s: connect timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt broker %s: %w", broker, err)
	}

	log.WithField("broker", broker).Info("Connected to MQTT broker")
	return &Publisher{client: client, prefix: prefix, log: log}, nil
}

// PublishNotification publishes a notification item on <prefix>/notifications.
func (p *Publisher) PublishNotification(item models.NotificationItem) {
	p.publish("notifications", item)
}

// PublishAudit publishes an audit entry on <prefix>/audit.
func (p *Publisher) PublishAudit(entry models.AuditLog) {
	p.publish("audit", entry)
}

// Close disconnects from the broker, letting in-flight messages drain.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.client.Disconnect(250)
}

// publish is fire and forget: delivery failures are logged, never returned.
func (p *Publisher) publish(subtopic string, payload interface{}) {
	if p == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		p.log.WithError(err).WithField("topic", subtopic).Error("Failed to marshal event")
		return
	}
	topic := fmt.Sprintf("%s/%s", p.prefix, subtopic)
	p.client.Publish(topic, 0, false, data)
}
