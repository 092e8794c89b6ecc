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
	"sort"
	"sync"
	"sync/atomic"
	"time"

	aerr "github.com/ewoutp/go-aggregate-error"
	"github.com/mattn/go-pubsub"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/daqnet/CounterWorker/model"
	"github.com/daqnet/CounterWorker/pkg/daqmx"
	"github.com/daqnet/CounterWorker/pkg/daqmx/driver"
)

// Sample is one measured value of a configured channel.
type Sample struct {
	ChannelID string    `json:"channel"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Time      time.Time `json:"time"`
}

// Service samples the configured counter channels and publishes the
// results.
type Service interface {
	// Run the service until the given context is canceled.
	Run(ctx context.Context) error
	// RegisterSampleReceiver registers a callback that is invoked for
	// every sample. The returned function cancels the registration.
	RegisterSampleReceiver(cb func(Sample)) context.CancelFunc
	// GetActuals returns the most recent sample of every channel,
	// ordered by channel ID.
	GetActuals() []Sample
	// TotalSamples returns the number of samples read since startup.
	TotalSamples() uint64
	// Close clears all tasks inside the driver.
	Close() error
}

const (
	// readTimeout is passed to the driver on every sample read (seconds).
	readTimeout = 10.0
)

type service struct {
	log     zerolog.Logger
	tasks   []*sampledChannel
	samples *pubsub.PubSub
	total   uint64

	mutex   sync.RWMutex
	actuals map[string]Sample
}

// sampledChannel pairs a configured channel with the task that owns it.
// The task is only ever touched by the channel's own sampling goroutine.
type sampledChannel struct {
	config   model.Channel
	task     *daqmx.Task
	channel  daqmx.Channel
	interval time.Duration
}

// New instantiates a new Service and a driver task per configured channel.
func New(config model.Config, api driver.API, log zerolog.Logger) (Service, error) {
	s := &service{
		log:     log.With().Str("component", "service").Logger(),
		samples: pubsub.New(),
		actuals: make(map[string]Sample),
	}
	defaultInterval := config.GetSampleInterval()
	for _, cc := range config.Channels {
		sc, err := buildChannel(cc, api, defaultInterval, log)
		if err != nil {
			s.closeTasks()
			return nil, maskAny(err)
		}
		s.tasks = append(s.tasks, sc)
	}
	return s, nil
}

// buildChannel creates and starts a task for the given channel
// configuration.
func buildChannel(cc model.Channel, api driver.API, defaultInterval time.Duration, log zerolog.Logger) (*sampledChannel, error) {
	task, err := daqmx.NewTask(api, cc.ID, log)
	if err != nil {
		return nil, maskAny(err)
	}
	channel, err := createChannel(task, cc)
	if err != nil {
		task.Close()
		return nil, maskAny(err)
	}
	if err := task.Start(); err != nil {
		task.Close()
		return nil, maskAny(err)
	}
	return &sampledChannel{
		config:   cc,
		task:     task,
		channel:  channel,
		interval: cc.GetSampleInterval(defaultInterval),
	}, nil
}

// createChannel adds the counter input channel described by the
// configuration to the given task.
func createChannel(task *daqmx.Task, cc model.Channel) (daqmx.Channel, error) {
	edge := daqmx.EdgeRising
	if cc.Edge == model.EdgeFalling {
		edge = daqmx.EdgeFalling
	}
	hasRange := cc.MinVal != 0 || cc.MaxVal != 0
	switch cc.Type {
	case model.ChannelTypeCountEdges:
		cfg := daqmx.DefaultCountEdgesConfig()
		cfg.Edge = edge
		return task.CI.AddCountEdgesChan(cc.Counter, cc.Name, cfg)
	case model.ChannelTypeFrequency:
		cfg := daqmx.DefaultFreqConfig()
		cfg.Edge = edge
		if hasRange {
			cfg.MinVal, cfg.MaxVal = cc.MinVal, cc.MaxVal
		}
		return task.CI.AddFreqChan(cc.Counter, cc.Name, cfg)
	case model.ChannelTypePeriod:
		cfg := daqmx.DefaultPeriodConfig()
		cfg.Edge = edge
		if hasRange {
			cfg.MinVal, cfg.MaxVal = cc.MinVal, cc.MaxVal
		}
		return task.CI.AddPeriodChan(cc.Counter, cc.Name, cfg)
	case model.ChannelTypePulseWidth:
		cfg := daqmx.DefaultPulseWidthConfig()
		cfg.StartingEdge = edge
		if hasRange {
			cfg.MinVal, cfg.MaxVal = cc.MinVal, cc.MaxVal
		}
		return task.CI.AddPulseWidthChan(cc.Counter, cc.Name, cfg)
	case model.ChannelTypeDutyCycle:
		cfg := daqmx.DefaultDutyCycleConfig()
		cfg.Edge = edge
		if hasRange {
			cfg.MinFreq, cfg.MaxFreq = cc.MinVal, cc.MaxVal
		}
		return task.CI.AddDutyCycleChan(cc.Counter, cc.Name, cfg)
	case model.ChannelTypeAngEncoder:
		cfg := daqmx.DefaultAngEncoderConfig()
		if cc.PulsesPerRev != 0 {
			cfg.PulsesPerRev = cc.PulsesPerRev
		}
		return task.CI.AddAngEncoderChan(cc.Counter, cc.Name, cfg)
	}
	return daqmx.Channel{}, errors.Wrapf(model.ValidationError, "unsupported channel type '%s'", cc.Type)
}

// Run samples every channel on its own interval until the given context is
// canceled.
func (s *service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sc := range s.tasks {
		sc := sc
		g.Go(func() error {
			return s.runChannel(ctx, sc)
		})
	}
	return g.Wait()
}

// runChannel is the sampling loop for a single channel. The task handle is
// only touched here, keeping task access single threaded.
func (s *service) runChannel(ctx context.Context, sc *sampledChannel) error {
	log := s.log.With().Str("channel", sc.config.ID).Logger()
	log.Debug().
		Str("counter", sc.config.Counter).
		Str("name", sc.channel.Name()).
		Dur("interval", sc.interval).
		Msg("sampling channel")
	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			value, err := sc.task.ReadCounterScalarF64(readTimeout)
			if err != nil {
				sampleErrorsTotal.WithLabelValues(sc.config.ID).Inc()
				log.Warn().Err(err).Msg("sample read failed")
				continue
			}
			sample := Sample{
				ChannelID: sc.config.ID,
				Name:      sc.channel.Name(),
				Value:     value,
				Time:      time.Now(),
			}
			s.record(sample)
		}
	}
}

// record stores the sample as the channel's actual value and publishes it
// to all registered receivers.
func (s *service) record(sample Sample) {
	s.mutex.Lock()
	s.actuals[sample.ChannelID] = sample
	s.mutex.Unlock()

	atomic.AddUint64(&s.total, 1)
	samplesReadTotal.WithLabelValues(sample.ChannelID).Inc()
	sampleValueGauge.WithLabelValues(sample.ChannelID).Set(sample.Value)
	s.samples.Pub(sample)
}

// RegisterSampleReceiver registers a callback that is invoked for every
// sample.
func (s *service) RegisterSampleReceiver(cb func(Sample)) context.CancelFunc {
	s.samples.Sub(cb)
	return func() {
		s.samples.Leave(cb)
	}
}

// GetActuals returns the most recent sample of every channel, ordered by
// channel ID.
func (s *service) GetActuals() []Sample {
	s.mutex.RLock()
	result := make([]Sample, 0, len(s.actuals))
	for _, sample := range s.actuals {
		result = append(result, sample)
	}
	s.mutex.RUnlock()
	sort.Slice(result, func(i, j int) bool { return result[i].ChannelID < result[j].ChannelID })
	return result
}

// TotalSamples returns the number of samples read since startup.
func (s *service) TotalSamples() uint64 {
	return atomic.LoadUint64(&s.total)
}

// Close clears all tasks inside the driver.
func (s *service) Close() error {
	return s.closeTasks()
}

func (s *service) closeTasks() error {
	var ae aerr.AggregateError
	for _, sc := range s.tasks {
		if err := sc.task.Close(); err != nil {
			ae.Add(maskAny(err))
		}
	}
	return ae.AsError()
}
