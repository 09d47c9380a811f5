package mqtt

import (
	"crypto/tls"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/evsight/evsight/core/analysis"
)

// Config holds the broker connection settings for the report publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      int    `json:"qos"`
	UseTLS   bool   `json:"use_tls"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "evsight"
	}
	if c.Topic == "" {
		c.Topic = "evsight/reports"
	}
}

// PahoPublisher publishes reports over MQTT using the paho client.
type PahoPublisher struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewPahoPublisher connects to the broker and returns a publisher.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.UseTLS {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{client: client, topic: cfg.Topic, qos: byte(cfg.QoS)}, nil
}

// PublishReport publishes the report as JSON on the configured topic.
func (p *PahoPublisher) PublishReport(rep analysis.Report) error {
	payload, err := encodeReport(rep)
	if err != nil {
		return err
	}
	token := p.client.Publish(p.topic, p.qos, false, payload)
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
