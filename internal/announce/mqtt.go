// Package announce publishes resolved winners to an MQTT broker.
package announce

import (
	"encoding/json"
	"fmt"
	"time"

	"spinwheel/internal/config"
	"spinwheel/internal/spin"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const publishTimeout = 2 * time.Second

// Event is the JSON payload published for every winner.
type Event struct {
	Seq        int       `json:"seq"`
	Label      string    `json:"label"`
	SpinID     string    `json:"spin_id"`
	ResolvedAt time.Time `json:"resolved_at"`
}

func NewEvent(w spin.Winner) Event {
	return Event{
		Seq:        w.Seq,
		Label:      w.Label,
		SpinID:     w.SpinID.String(),
		ResolvedAt: w.ResolvedAt,
	}
}

// publisher is the subset of paho.Client the announcer needs.
type publisher interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload any) paho.Token
}

// MQTT announces winners on a topic. A disabled announcer is a no-op.
type MQTT struct {
	client  publisher
	topic   string
	enabled bool
	onError func(error)
}

type Option func(*MQTT)

// WithErrorHandler receives publish failures, which never interrupt a spin.
func WithErrorHandler(fn func(error)) Option {
	return func(m *MQTT) {
		m.onError = fn
	}
}

func withClient(c publisher) Option {
	return func(m *MQTT) {
		m.client = c
	}
}

// New builds an announcer. An empty host returns a disabled announcer.
func New(cfg config.MQTT, opts ...Option) *MQTT {
	m := &MQTT{topic: cfg.Topic}
	for _, opt := range opts {
		opt(m)
	}

	if cfg.Host == "" {
		return m
	}
	m.enabled = true

	if m.client == nil {
		broker := fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)
		clientOpts := paho.NewClientOptions().
			AddBroker(broker).
			SetClientID(cfg.ClientID).
			SetAutoReconnect(true).
			SetConnectRetry(false).
			SetKeepAlive(60 * time.Second)
		m.client = paho.NewClient(clientOpts)
	}
	return m
}

func (m *MQTT) Enabled() bool {
	return m.enabled
}

// Connect dials the broker. No-op if disabled.
func (m *MQTT) Connect() error {
	if !m.enabled {
		return nil
	}

	token := m.client.Connect()
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("connect mqtt: timed out after %s", publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect mqtt: %w", err)
	}
	return nil
}

// Close disconnects from the broker. No-op if disabled.
func (m *MQTT) Close() {
	if !m.enabled {
		return
	}
	m.client.Disconnect(250)
}

// Announce publishes w without blocking the caller's update loop.
// It matches the spin.WithWinnerHandler signature.
func (m *MQTT) Announce(w spin.Winner) {
	if !m.enabled {
		return
	}

	payload, err := json.Marshal(NewEvent(w))
	if err != nil {
		m.report(fmt.Errorf("encode winner: %w", err))
		return
	}

	token := m.client.Publish(m.topic, 1, false, payload)
	go func() {
		if !token.WaitTimeout(publishTimeout) {
			m.report(fmt.Errorf("publish %s: timed out", m.topic))
			return
		}
		if err := token.Error(); err != nil {
			m.report(fmt.Errorf("publish %s: %w", m.topic, err))
		}
	}()
}

func (m *MQTT) report(err error) {
	if m.onError != nil {
		m.onError(err)
	}
}
