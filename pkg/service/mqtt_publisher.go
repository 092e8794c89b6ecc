// Copyright 2026 The CounterWorker authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"encoding/json"
	"path"
	"time"

	mqttapi "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
)

const (
	mqttPublishTimeout = time.Millisecond * 200
	mqttQoS            = 0
)

// MQTTPublisher forwards every sample of a service to an MQTT broker, one
// topic per channel.
type MQTTPublisher struct {
	log         zerolog.Logger
	client      mqttapi.Client
	topicPrefix string
	cancel      context.CancelFunc
}

// NewMQTTPublisher connects to the given broker and registers itself as
// sample receiver on the given service.
func NewMQTTPublisher(brokerAddress, clientID, topicPrefix string, svc Service, log zerolog.Logger) (*MQTTPublisher, error) {
	opts := mqttapi.NewClientOptions().
		AddBroker("tcp://" + brokerAddress).
		SetClientID(clientID)
	opts.SetKeepAlive(2 * time.Second)
	opts.SetPingTimeout(1 * time.Second)
	opts.SetAutoReconnect(true)

	client := mqttapi.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, maskAny(token.Error())
	}
	p := &MQTTPublisher{
		log:         log.With().Str("component", "mqtt-publisher").Logger(),
		client:      client,
		topicPrefix: topicPrefix,
	}
	p.cancel = svc.RegisterSampleReceiver(p.publish)
	p.log.Info().Str("broker", brokerAddress).Msg("publishing samples to MQTT")
	return p, nil
}

// publish sends a single sample as JSON.
func (p *MQTTPublisher) publish(sample Sample) {
	payload, err := json.Marshal(sample)
	if err != nil {
		p.log.Error().Err(err).Msg("cannot encode sample")
		return
	}
	topic := path.Join(p.topicPrefix, sample.ChannelID)
	token := p.client.Publish(topic, mqttQoS, false, payload)
	if !token.WaitTimeout(mqttPublishTimeout) {
		p.log.Warn().Str("topic", topic).Msg("MQTT publish timeout")
		return
	}
	if err := token.Error(); err != nil {
		p.log.Warn().Err(err).Str("topic", topic).Msg("MQTT publish failed")
		return
	}
	mqttPublishedTotal.WithLabelValues(sample.ChannelID).Inc()
}

// Close unregisters the receiver and disconnects from the broker.
func (p *MQTTPublisher) Close() error {
	p.cancel()
	p.client.Disconnect(250)
	return nil
}
