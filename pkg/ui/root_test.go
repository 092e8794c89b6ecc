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

package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daqnet/CounterWorker/pkg/service"
)

// fakeService feeds the UI without a driver behind it.
type fakeService struct {
	actuals []service.Sample
	total   uint64
}

func (f *fakeService) Run(ctx context.Context) error { return nil }
func (f *fakeService) RegisterSampleReceiver(cb func(service.Sample)) context.CancelFunc {
	return func() {}
}
func (f *fakeService) GetActuals() []service.Sample { return f.actuals }
func (f *fakeService) TotalSamples() uint64         { return f.total }
func (f *fakeService) Close() error                 { return nil }

func TestRootRefresh(t *testing.T) {
	svc := &fakeService{
		actuals: []service.Sample{
			{ChannelID: "spindle", Name: "spindle", Value: 42, Time: time.Now()},
		},
		total: 1234567,
	}
	var m tea.Model = New(svc)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = m.Update(refreshActualsMsg{})

	view := m.View()
	if !strings.Contains(view, "spindle") {
		t.Errorf("Expected channel row in view, got %q", view)
	}
	if !strings.Contains(view, "1,234,567") {
		t.Errorf("Expected humanized sample total in header, got %q", view)
	}
}

func TestRootQuit(t *testing.T) {
	var m tea.Model = New(&fakeService{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("Expected tea.QuitMsg, got %#v", msg)
	}
}
