package server

import (
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"joken-ghost/internal/content"
	"joken-ghost/internal/game"
	"joken-ghost/internal/render"
)

// SSHServer serves one battle per SSH session.
type SSHServer struct {
	addr    string
	hostKey string
	content *content.Content
	newRNG  func() game.RNG
	hooks   []func(*game.Session)
	active  atomic.Int32
}

// NewSSHServer creates a new SSH server bound to the given address. newRNG is
// called once per connection.
func NewSSHServer(addr, hostKey string, c *content.Content, newRNG func() game.RNG) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		content: c,
		newRNG:  newRNG,
	}
}

// OnSession registers a hook run for every new battle before it starts.
func (s *SSHServer) OnSession(fn func(*game.Session)) {
	s.hooks = append(s.hooks, fn)
}

// Active returns the number of battles in progress.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Hunter"
	}

	battle := game.NewSession(s.content.Config(s.newRNG(), username))
	for _, hook := range s.hooks {
		hook(battle)
	}
	go battle.Run()

	s.active.Add(1)
	log.Printf("Hunter connected: %s (battle %s, %d active)", username, battle.ID(), s.Active())
	defer func() {
		battle.Stop()
		s.active.Add(-1)
		log.Printf("Hunter disconnected: %s (battle %s)", username, battle.ID())
	}()

	// Terminal dimensions
	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	engine := render.NewEngine(termW, termH)
	engine.SetPalette(s.content.Colors)
	engine.SetLayout(s.content.Layout)

	// Setup terminal
	io.WriteString(sess, render.EnterScreen)
	defer io.WriteString(sess, render.LeaveScreen)

	inputCh := battle.InputChan()
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range parseInput(buf[:n]) {
				if action == game.ActionQuit {
					close(quitCh)
					return
				}
				select {
				case inputCh <- game.InputEvent{Action: action}:
				default:
				}
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
		}
	}()

	// Main render loop: read from render channel
	renderCh := battle.RenderChan()
	for {
		select {
		case <-quitCh:
			return
		case state, ok := <-renderCh:
			if !ok {
				return
			}

			termMu.Lock()
			w, h := termW, termH
			termMu.Unlock()

			output := engine.Render(state, w, h)
			if len(output) > 0 {
				io.WriteString(sess, output)
			}
		}
	}
}

// parseInput converts raw bytes into battle actions.
// Handles the rune keymap, arrow and shift-tab escape sequences.
func parseInput(data []byte) []game.Action {
	var actions []game.Action
	i := 0
	for i < len(data) {
		// Check for escape sequences
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'C', 'A':
				actions = append(actions, game.ActionTargetNext)
			case 'D', 'B', 'Z':
				actions = append(actions, game.ActionTargetPrev)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if a := game.RuneAction(r); a != game.ActionNone {
			actions = append(actions, a)
		}
		i += size
	}
	return actions
}
