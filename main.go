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

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	terminate "github.com/pulcy/go-terminate"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/daqnet/CounterWorker/model"
	"github.com/daqnet/CounterWorker/pkg/daqmx/driver"
	"github.com/daqnet/CounterWorker/pkg/server"
	"github.com/daqnet/CounterWorker/pkg/service"
	"github.com/daqnet/CounterWorker/pkg/ui"
)

const (
	projectName     = "CounterWorker"
	defaultHTTPPort = 7231
)

var (
	projectVersion = "dev"
	projectBuild   = "dev"
)

func main() {
	var levelFlag string
	var driverType string
	var configPath string
	var serverHost string
	var httpPort int
	var mqttBroker string
	var mqttTopicPrefix string
	var withUI bool

	pflag.StringVarP(&levelFlag, "level", "l", "debug", "Set log level")
	pflag.StringVarP(&driverType, "driver", "d", "sim", "Type of driver to use (sim|nidaqmx)")
	pflag.StringVarP(&configPath, "config", "c", "config.json", "Path of channel configuration file")
	pflag.StringVar(&serverHost, "host", "0.0.0.0", "Host address the HTTP server will listen on")
	pflag.IntVar(&httpPort, "http-port", defaultHTTPPort, "Port the HTTP server will listen on")
	pflag.StringVar(&mqttBroker, "mqtt-broker", "", "Address of MQTT broker to publish samples to (empty to disable)")
	pflag.StringVar(&mqttTopicPrefix, "mqtt-topic-prefix", "counterworker", "Topic prefix for published samples")
	pflag.BoolVar(&withUI, "ui", false, "Run the terminal UI")
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(levelFlag); err != nil {
		Exitf("Invalid log level '%s': %v\n", levelFlag, err)
	} else {
		logger = logger.Level(level)
	}

	var api driver.API
	var err error
	switch driverType {
	case "sim":
		api = driver.NewSim()
	case "nidaqmx":
		api, err = driver.NewNIDAQmx()
		if err != nil {
			Exitf("Failed to initialize NI-DAQmx driver: %v\n", err)
		}
	default:
		Exitf("Unknown driver type '%s' (sim|nidaqmx)\n", driverType)
	}

	config, err := model.LoadConfig(configPath)
	if err != nil {
		Exitf("Failed to load configuration from '%s': %v\n", configPath, err)
	}

	svc, err := service.New(config, api, logger)
	if err != nil {
		Exitf("Failed to initialize Service: %v\n", err)
	}

	httpServer, err := server.New(server.Config{
		Host:     serverHost,
		HTTPPort: httpPort,
	}, logger, svc)
	if err != nil {
		Exitf("Failed to initialize Server: %v\n", err)
	}

	var mqttPub *service.MQTTPublisher
	if mqttBroker != "" {
		clientID := fmt.Sprintf("counterworker-%d", os.Getpid())
		mqttPub, err = service.NewMQTTPublisher(mqttBroker, clientID, mqttTopicPrefix, svc, logger)
		if err != nil {
			Exitf("Failed to connect to MQTT broker '%s': %v\n", mqttBroker, err)
		}
	}

	// Prepare to shutdown in a controlled manor
	ctx, cancel := context.WithCancel(context.Background())
	t := terminate.NewTerminator(func(template string, args ...interface{}) {
		logger.Info().Msgf(template, args...)
	}, cancel)
	go t.ListenSignals()

	if !withUI {
		fmt.Printf("Starting %s (version %s build %s)\n", projectName, projectVersion, projectBuild)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return svc.Run(ctx) })
	g.Go(func() error { return httpServer.Run(ctx) })
	if withUI {
		g.Go(func() error {
			p := tea.NewProgram(ui.New(svc), tea.WithContext(ctx), tea.WithAltScreen())
			_, err := p.Run()
			cancel()
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		})
	}
	err = g.Wait()
	if mqttPub != nil {
		mqttPub.Close()
	}
	svc.Close()
	if err != nil && err != context.Canceled {
		Exitf("Service run failed: %#v", err)
	}
}

// Print the given error message and exit with code 1
func Exitf(message string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, message, args...)
	os.Exit(1)
}
