package booking

import "fmt"

// Status is the booking lifecycle state. Fulfillment moves strictly forward
// along the chain below; cancellation is reachable from any non-terminal
// state and is itself terminal.
type Status string

const (
	StatusPending           Status = "pending"
	StatusAssigned          Status = "assigned"
	StatusPlanningPhase     Status = "planning_phase"
	StatusMaterialsPrepared Status = "materials_prepared"
	StatusOnTheWay          Status = "on_the_way"
	StatusSetupInProgress   Status = "setup_in_progress"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
)

// forwardChain is the canonical fulfillment order.
var forwardChain = []Status{
	StatusPending,
	StatusAssigned,
	StatusPlanningPhase,
	StatusMaterialsPrepared,
	StatusOnTheWay,
	StatusSetupInProgress,
	StatusCompleted,
}

var chainIndex = func() map[Status]int {
	m := make(map[Status]int, len(forwardChain))
	for i, s := range forwardChain {
		m[s] = i
	}
	return m
}()

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := chainIndex[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Next returns the immediate successor in the fulfillment chain.
func (s Status) Next() (Status, bool) {
	i, ok := chainIndex[s]
	if !ok || i == len(forwardChain)-1 {
		return "", false
	}
	return forwardChain[i+1], true
}

// CanTransitionTo reports whether (s -> target) is a valid transition:
// the immediate successor, or cancellation from a non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if target == StatusCancelled {
		return !s.IsTerminal()
	}
	next, ok := s.Next()
	return ok && next == target
}

// NextStates lists every state reachable from s in one valid transition.
func (s Status) NextStates() []Status {
	if s.IsTerminal() {
		return nil
	}
	var out []Status
	if next, ok := s.Next(); ok {
		out = append(out, next)
	}
	return append(out, StatusCancelled)
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", s)
	}
	return status, nil
}

type ServiceMode string

const (
	ModeOffline ServiceMode = "offline"
	ModeOnline  ServiceMode = "online"
)

func (m ServiceMode) IsValid() bool {
	return m == ModeOffline || m == ModeOnline
}

func ParseServiceMode(s string) (ServiceMode, error) {
	mode := ServiceMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid service mode: %q", s)
	}
	return mode, nil
}
