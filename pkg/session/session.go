// Package session holds the state machine for one lesson run:
// input -> loading -> ready | error, with restart back to input.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/lessonlabs/slidekit/pkg/generator"

	"github.com/google/uuid"
)

type State string

const (
	StateInput   State = "input"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

type Reason string

const (
	ReasonNone Reason = ""

	ReasonGeneric Reason = "generic"

	// ReasonCredentials asks the user to re-select credentials
	// instead of retrying.
	ReasonCredentials Reason = "credentials"
)

var (
	// ErrRunInFlight rejects a submit while a run is loading. One
	// generation per session: additional submits are ignored rather
	// than cancelling or queueing.
	ErrRunInFlight = errors.New("a generation run is already in flight")

	ErrNotLoading = errors.New("session is not loading")
)

type Session struct {
	mu sync.Mutex

	id    string
	topic string

	state  State
	reason Reason

	bundle *generator.Bundle

	updated time.Time
}

func New() *Session {
	return &Session{
		id: uuid.NewString(),

		state: StateInput,

		updated: time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Submit moves the session into loading. The previous bundle, if any,
// is discarded entirely.
func (s *Session) Submit(topic string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateLoading {
		return ErrRunInFlight
	}

	s.topic = topic
	s.state = StateLoading
	s.reason = ReasonNone
	s.bundle = nil
	s.updated = time.Now()

	return nil
}

func (s *Session) Succeed(bundle *generator.Bundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return ErrNotLoading
	}

	s.state = StateReady
	s.bundle = bundle
	s.updated = time.Now()

	return nil
}

func (s *Session) Fail(reason Reason) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading {
		return ErrNotLoading
	}

	s.state = StateError
	s.reason = reason
	s.updated = time.Now()

	return nil
}

// Restart discards the bundle and returns to input.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.topic = ""
	s.state = StateInput
	s.reason = ReasonNone
	s.bundle = nil
	s.updated = time.Now()
}

type Status struct {
	ID    string
	Topic string

	State  State
	Reason Reason

	Bundle *generator.Bundle

	Updated time.Time
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		ID:    s.id,
		Topic: s.topic,

		State:  s.state,
		Reason: s.reason,

		Bundle: s.bundle,

		Updated: s.updated,
	}
}
