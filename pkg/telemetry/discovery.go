package telemetry

import (
	"encoding/json"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const deviceID = "towersim_building"

// discoveryDevice groups all entities under one device in Home Assistant.
type discoveryDevice struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Model        string   `json:"model,omitempty"`
}

// discoveryConfig is a Home Assistant MQTT discovery payload for one sensor.
type discoveryConfig struct {
	Name             string          `json:"name,omitempty"`
	DeviceClass      string          `json:"device_class,omitempty"`
	StateTopic       string          `json:"state_topic"`
	UnitOfMeasure    string          `json:"unit_of_measurement,omitempty"`
	ValueTemplate    string          `json:"value_template"`
	UniqueID         string          `json:"unique_id"`
	StateClass       string          `json:"state_class,omitempty"`
	DisplayPrecision int             `json:"suggested_display_precision,omitempty"`
	Device           discoveryDevice `json:"device"`
}

// entity describes one snapshot field exposed as a sensor.
type entity struct {
	name        string
	class       string
	unit        string
	jsonKey     string
	stateClass  string
	displayPrec int
}

// sensorEntities maps Snapshot JSON fields onto Home Assistant sensors.
var sensorEntities = []entity{
	{name: "Ambient Temperature", class: "temperature", unit: "°C", jsonKey: "temperatureC", stateClass: "measurement", displayPrec: 1},
	{name: "Cooling Load", class: "power", unit: "kW", jsonKey: "coolingLoadKW", stateClass: "measurement", displayPrec: 1},
	{name: "Solar Generation", class: "power", unit: "kW", jsonKey: "solarKW", stateClass: "measurement", displayPrec: 1},
	{name: "Ice Storage Level", unit: "%", jsonKey: "iceLevelPct", stateClass: "measurement"},
	{name: "Water Recovery", unit: "L/h", jsonKey: "waterRecoveredLPH", stateClass: "measurement", displayPrec: 1},
	{name: "Operating Mode", jsonKey: "mode"},
	{name: "Status", jsonKey: "analysis"},
}

// publishDiscovery announces every sensor entity, retained so Home Assistant
// rediscovers them after restarts.
func (p *Publisher) publishDiscovery(client mqtt.Client) error {
	for _, e := range sensorEntities {
		cfg := p.entityConfig(e)
		payload, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		token := client.Publish(p.configTopic(e), 1, true, payload)
		if token.Wait() && token.Error() != nil {
			return token.Error()
		}
	}
	return nil
}

func (p *Publisher) entityConfig(e entity) discoveryConfig {
	return discoveryConfig{
		Name:             e.name,
		DeviceClass:      e.class,
		StateTopic:       p.stateTopic(),
		UnitOfMeasure:    e.unit,
		ValueTemplate:    "{{ value_json." + e.jsonKey + " }}",
		UniqueID:         deviceID + "_" + e.jsonKey,
		StateClass:       e.stateClass,
		DisplayPrecision: e.displayPrec,
		Device: discoveryDevice{
			Identifiers:  []string{deviceID},
			Name:         p.deviceName,
			Manufacturer: "TowerSim",
			Model:        "single-building micro-simulation",
		},
	}
}

func (p *Publisher) configTopic(e entity) string {
	return p.topicPrefix + "/sensor/" + deviceID + "_" + e.jsonKey + "/config"
}
