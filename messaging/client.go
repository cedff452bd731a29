package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/looplab/fsm"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"fleetdash/config"
)

var (
	ErrDisabled     = errors.New("messaging disabled")
	ErrNotConnected = errors.New("messaging not connected")
)

const opTimeout = 5 * time.Second

// Client publishes to whichever broker the config names. An empty backend
// disables it.
type Client struct {
	mu      sync.Mutex
	cfg     config.MessagingConfig
	mqtt    mqtt.Client
	kafka   *kafka.Writer
	link    *fsm.FSM
	log     *zap.SugaredLogger
	onState func(from, to string)
}

func NewClient(cfg *config.MessagingConfig, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &Client{cfg: *cfg, log: log}
	c.link = newLinkFSM(c.stateChanged)
	return c
}

// OnStateChange registers fn to run after every link transition.
func (c *Client) OnStateChange(fn func(from, to string)) {
	c.mu.Lock()
	c.onState = fn
	c.mu.Unlock()
}

func (c *Client) stateChanged(from, to string) {
	c.log.Infof("messaging: %s -> %s", from, to)
	c.mu.Lock()
	fn := c.onState
	c.mu.Unlock()
	if fn != nil {
		fn(from, to)
	}
}

func (c *Client) transition(event string) {
	// Events that do not apply in the current state are ignored.
	_ = c.link.Event(context.Background(), event)
}

func (c *Client) Backend() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Backend
}

func (c *Client) Topic() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Topic
}

// State is one of StateDisconnected, StateConnecting or StateConnected.
func (c *Client) State() string { return c.link.Current() }

func (c *Client) IsConnected() bool { return c.link.Current() == StateConnected }

func (c *Client) Connect() error {
	c.mu.Lock()
	cfg := c.cfg
	c.mu.Unlock()

	switch cfg.Backend {
	case "":
		return nil
	case "mqtt":
		return c.connectMQTT(&cfg)
	case "kafka":
		return c.connectKafka(&cfg)
	default:
		return fmt.Errorf("unsupported messaging backend: %s", cfg.Backend)
	}
}

func (c *Client) connectMQTT(cfg *config.MessagingConfig) error {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTT.Broker).
		SetClientID(cfg.MQTT.ClientID).
		SetUsername(cfg.MQTT.Username).
		SetPassword(cfg.MQTT.Password).
		SetAutoReconnect(true).
		SetConnectTimeout(opTimeout).
		SetOnConnectHandler(func(mqtt.Client) { c.transition(eventUp) }).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			c.log.Warnf("messaging: mqtt connection lost: %v", err)
			c.transition(eventDown)
		})

	client := mqtt.NewClient(opts)
	c.transition(eventDial)
	token := client.Connect()
	if !token.WaitTimeout(opTimeout) {
		c.transition(eventDialFail)
		return fmt.Errorf("mqtt connect %s: timeout", cfg.MQTT.Broker)
	}
	if err := token.Error(); err != nil {
		c.transition(eventDialFail)
		return fmt.Errorf("mqtt connect %s: %w", cfg.MQTT.Broker, err)
	}

	c.mu.Lock()
	c.mqtt = client
	c.mu.Unlock()
	c.transition(eventUp)
	return nil
}

func (c *Client) connectKafka(cfg *config.MessagingConfig) error {
	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("kafka: no brokers configured")
	}
	c.transition(eventDial)
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	conn, err := kafka.DialContext(ctx, "tcp", cfg.Kafka.Brokers[0])
	if err != nil {
		c.transition(eventDialFail)
		return fmt.Errorf("kafka dial %s: %w", cfg.Kafka.Brokers[0], err)
	}
	conn.Close()

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           opTimeout,
	}
	c.mu.Lock()
	c.kafka = w
	c.mu.Unlock()
	c.transition(eventUp)
	return nil
}

// KafkaTopic maps a slash-separated topic onto Kafka's allowed characters.
func KafkaTopic(topic string) string {
	return strings.ReplaceAll(strings.Trim(topic, "/"), "/", ".")
}

// Publish sends data to topic on the configured backend.
func (c *Client) Publish(topic string, data []byte) error {
	c.mu.Lock()
	backend, qos := c.cfg.Backend, c.cfg.MQTT.QoS
	mc, kw := c.mqtt, c.kafka
	c.mu.Unlock()

	if backend == "" {
		return ErrDisabled
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	switch {
	case mc != nil:
		token := mc.Publish(topic, qos, false, data)
		if !token.WaitTimeout(opTimeout) {
			return fmt.Errorf("mqtt publish %s: timeout", topic)
		}
		return token.Error()
	case kw != nil:
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		err := kw.WriteMessages(ctx, kafka.Message{Topic: KafkaTopic(topic), Value: data})
		if err != nil {
			c.transition(eventDown)
			return fmt.Errorf("kafka publish %s: %w", topic, err)
		}
		return nil
	default:
		return ErrNotConnected
	}
}

// Ping re-dials a Kafka broker that was marked down. MQTT reconnects on its own.
func (c *Client) Ping() error {
	c.mu.Lock()
	cfg := c.cfg
	kw := c.kafka
	c.mu.Unlock()
	if cfg.Backend != "kafka" || c.IsConnected() {
		return nil
	}
	if kw != nil {
		kw.Close()
		c.mu.Lock()
		c.kafka = nil
		c.mu.Unlock()
	}
	return c.connectKafka(&cfg)
}

// Reconfigure closes the current connection and connects with cfg.
func (c *Client) Reconfigure(cfg *config.MessagingConfig) error {
	c.Close()
	c.mu.Lock()
	c.cfg = *cfg
	c.mu.Unlock()
	return c.Connect()
}

func (c *Client) Close() {
	c.mu.Lock()
	mc, kw := c.mqtt, c.kafka
	c.mqtt, c.kafka = nil, nil
	c.mu.Unlock()

	if mc != nil {
		mc.Disconnect(250)
	}
	if kw != nil {
		if err := kw.Close(); err != nil {
			c.log.Warnf("messaging: close kafka writer: %v", err)
		}
	}
	c.transition(eventDown)
}
