package stream

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// A Publisher delivers encoded frames to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// MQTTPublisher publishes frames through an MQTT client.
type MQTTPublisher struct {
	client  mqtt.Client
	qos     byte
	timeout time.Duration
}

// NewMQTTPublisher creates an instance of an MQTTPublisher. Each publish
// waits at most timeout for the broker to acknowledge it.
func NewMQTTPublisher(client mqtt.Client, qos byte, timeout time.Duration) *MQTTPublisher {
	p := new(MQTTPublisher)
	p.client = client
	p.qos = qos
	p.timeout = timeout
	return p
}

// Publish implements Publisher.
func (p *MQTTPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, p.qos, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publishing to %s: timed out after %s", topic, p.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

// NewMQTTClient builds a client from the mqtt section of the config.
func NewMQTTClient(config Config, onConnect mqtt.OnConnectHandler) mqtt.Client {
	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID(config.Mqtt.ClientID).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(onConnect)
	return mqtt.NewClient(options)
}
