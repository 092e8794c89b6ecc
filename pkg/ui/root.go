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
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/daqnet/CounterWorker/pkg/service"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	staleStyle  = lipgloss.NewStyle().Faint(true)
)

// Root is the top level terminal UI model, showing the latest sample of
// every channel.
type Root struct {
	service service.Service
	width   int
	height  int

	actuals  []service.Sample
	total    int64
	viewPort viewport.Model
	ready    bool
}

// New initializes the UI for the given service.
func New(svc service.Service) Root {
	return Root{
		service: svc,
	}
}

var _ tea.Model = Root{}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (r Root) Init() tea.Cmd {
	return doRefreshActuals()
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (r Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case refreshActualsMsg:
		r.actuals = r.service.GetActuals()
		r.total = int64(r.service.TotalSamples())
		if r.ready {
			r.viewPort.SetContent(r.actualsView())
		}
		return r, doRefreshActuals()
	case tea.WindowSizeMsg:
		r.height = msg.Height
		r.width = msg.Width
		headerHeight := lipgloss.Height(r.headerView())
		if !r.ready {
			r.viewPort = viewport.New(msg.Width, msg.Height-headerHeight)
			r.viewPort.YPosition = headerHeight
			r.viewPort.SetContent(r.actualsView())
			r.ready = true
		} else {
			r.viewPort.Width = msg.Width
			r.viewPort.Height = msg.Height - headerHeight
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		}
	}

	// Handle keyboard and mouse events in the viewport
	var cmd tea.Cmd
	r.viewPort, cmd = r.viewPort.Update(msg)
	cmds = append(cmds, cmd)

	return r, tea.Batch(cmds...)
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (r Root) View() string {
	if !r.ready {
		return "loading..."
	}
	return r.headerView() + r.viewPort.View()
}

func (r Root) headerView() string {
	return lipgloss.JoinHorizontal(lipgloss.Left,
		headerStyle.Render("CounterWorker"),
		fmt.Sprintf("  %s samples  (q to quit)", humanize.Comma(r.total)),
	) + "\n"
}

func (r Root) actualsView() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-16s %-24s %14s  %s\n", "ID", "CHANNEL", "VALUE", "AGE")
	now := time.Now()
	for _, sample := range r.actuals {
		age := now.Sub(sample.Time).Round(time.Second)
		line := fmt.Sprintf("%-16s %-24s %14.3f  %s", sample.ChannelID, sample.Name, sample.Value, age)
		if age > time.Second*10 {
			line = staleStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if len(r.actuals) == 0 {
		sb.WriteString("no samples yet\n")
	}
	return sb.String()
}

type refreshActualsMsg struct{}

func doRefreshActuals() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return refreshActualsMsg{}
	})
}
