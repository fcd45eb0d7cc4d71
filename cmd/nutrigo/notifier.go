package main

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// teaNotifier delivers reminder notifications into the running bubbletea
// program. It satisfies remind.Notifier; Enabled doubles as the
// notification-permission gate, driven by config.
type teaNotifier struct {
	mu      sync.Mutex
	program *tea.Program
	enabled bool
}

func (n *teaNotifier) SetProgram(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

func (n *teaNotifier) Enabled() bool {
	return n.enabled
}

func (n *teaNotifier) Notify(title, body string) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()
	if p == nil {
		return
	}
	p.Send(ReminderMsg{title: title, body: body})
}
