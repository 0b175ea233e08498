package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// program is the part of *tea.Program the bridge needs.
type program interface {
	Send(msg tea.Msg)
}

// Bridge lends the running program to the workflows: it asks confirmation
// questions, performs redirects and forwards surface changes.
//
// Between Detach and the next Attach there is no program: confirmations are
// refused and redirects are dropped.
type Bridge struct {
	mu      sync.Mutex
	program program
	done    chan struct{}
}

func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach binds p until Detach.
func (b *Bridge) Attach(p program) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.program = p
	b.done = make(chan struct{})
}

// Detach unbinds the program and releases pending confirmations.
func (b *Bridge) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done != nil {
		close(b.done)
	}
	b.program = nil
	b.done = nil
}

// Confirm shows prompt in an overlay and waits for y or n. It must not be
// called from the program's Update.
func (b *Bridge) Confirm(ctx context.Context, prompt string) bool {
	p, done := b.current()
	if p == nil {
		return false
	}

	reply := make(chan bool, 1)
	p.Send(confirmRequestMsg{prompt: prompt, reply: reply})

	select {
	case ok := <-reply:
		return ok
	case <-done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (b *Bridge) Redirect(path string) {
	if p, _ := b.current(); p != nil {
		p.Send(redirectMsg{path: path})
	}
}

// notify asks the program to re-read the surfaces. Surfaces publish from
// any goroutine, including Update itself, so the send never blocks the
// caller.
func (b *Bridge) notify() {
	if p, _ := b.current(); p != nil {
		go p.Send(refreshViewMsg{})
	}
}

func (b *Bridge) current() (program, <-chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.program, b.done
}
