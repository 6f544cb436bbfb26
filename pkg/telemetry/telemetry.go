// Package telemetry publishes each simulation tick to an MQTT broker so
// dashboards like Home Assistant can consume the building state without
// polling the API. It is optional: with no broker configured the publisher
// is inert.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/towersim/towersim/pkg/log"
	"github.com/towersim/towersim/pkg/types"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/levenlabs/go-lflag"
)

// Publisher forwards snapshots to an MQTT broker and announces the sensor
// entities via Home Assistant MQTT discovery.
type Publisher struct {
	broker      string
	clientID    string
	topicPrefix string
	username    string
	password    string
	deviceName  string

	mu     sync.Mutex
	client mqtt.Client
}

// Configured initializes the Publisher and registers its flags. Leaving
// mqtt-broker empty disables telemetry entirely.
func Configured() *Publisher {
	p := &Publisher{}

	broker := lflag.String("mqtt-broker", "", "MQTT broker host:port (empty disables telemetry)")
	clientID := lflag.String("mqtt-client-id", "towersim", "MQTT client ID")
	topicPrefix := lflag.String("mqtt-topic-prefix", "homeassistant", "Discovery topic prefix")
	username := lflag.String("mqtt-username", "", "MQTT username")
	password := lflag.String("mqtt-password", "", "MQTT password")
	deviceName := lflag.String("mqtt-device-name", "TowerSim Building", "Device name announced via discovery")

	lflag.Do(func() {
		p.broker = *broker
		p.clientID = *clientID
		p.topicPrefix = *topicPrefix
		p.username = *username
		p.password = *password
		p.deviceName = *deviceName
	})

	return p
}

// Enabled reports whether a broker was configured.
func (p *Publisher) Enabled() bool {
	return p.broker != ""
}

// Run connects to the broker and blocks until the context is canceled.
// Discovery configs are (re)announced on every connect so a restarted broker
// picks the entities back up.
func (p *Publisher) Run(ctx context.Context) error {
	if !p.Enabled() {
		<-ctx.Done()
		return nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", p.broker))
	opts.SetClientID(p.clientID)
	opts.SetUsername(p.username)
	opts.SetPassword(p.password)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetryInterval(5 * time.Second)

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Ctx(ctx).WarnContext(ctx, "mqtt connection lost", slog.Any("error", err))
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Ctx(ctx).InfoContext(ctx, "connected to mqtt broker", slog.String("broker", p.broker))
		if err := p.publishDiscovery(client); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to publish discovery configs", slog.Any("error", err))
		}
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to mqtt broker: %w", token.Error())
	}

	p.mu.Lock()
	p.client = client
	p.mu.Unlock()

	<-ctx.Done()

	p.mu.Lock()
	p.client = nil
	p.mu.Unlock()
	client.Disconnect(250)
	return nil
}

// Publish implements controller.Listener: the snapshot is published retained
// so late subscribers see the latest state. History is not mirrored to MQTT;
// chart consumers use the API.
func (p *Publisher) Publish(snap types.Snapshot, _ []types.HistorySample) {
	p.mu.Lock()
	client := p.client
	p.mu.Unlock()
	if client == nil || !client.IsConnected() {
		return
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		slog.Warn("failed to marshal snapshot for mqtt", slog.Any("error", err))
		return
	}
	client.Publish(p.stateTopic(), 1, true, payload)
}

func (p *Publisher) stateTopic() string {
	return p.topicPrefix + "/sensor/" + deviceID + "/state"
}
