// Package lifecycle drives a single email generation request from submission
// to a terminal outcome. All state changes happen on the caller's event loop:
// operations are invoked directly and timer or network completions come back
// as tagged messages through Update.
package lifecycle

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	// PhraseInterval is how long each progress phrase stays on screen.
	PhraseInterval = 2500 * time.Millisecond
	// StallThreshold is how long a request may run before the server is
	// reported as likely busy.
	StallThreshold = 45 * time.Second
	// CopyAckDuration is how long a successful copy stays acknowledged.
	CopyAckDuration = 2 * time.Second
)

// Phase is the lifecycle state of the controller.
type Phase int

// Lifecycle phases, in the order a request normally moves through them.
const (
	Idle Phase = iota
	AwaitingInput
	InFlight
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AwaitingInput:
		return "awaiting-input"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Generator performs the outbound generation call.
type Generator interface {
	Generate(ctx context.Context, url string) (string, error)
}

// Scheduler arranges for msg to be delivered after d.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler delivers msg through tea.Tick.
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Config wires collaborators into a Controller. Only Generator is required.
type Config struct {
	Generator Generator
	Scheduler Scheduler
	Logger    *slog.Logger
	// BaseContext is handed to the generator. Cancelling it is a shutdown
	// signal, not a way to abort a single request.
	BaseContext context.Context
}

// Controller owns the lifecycle of one outstanding generation request.
type Controller struct {
	schedule Scheduler
	logger   *slog.Logger
	jobs     *jobBus

	phase         Phase
	input         string
	inputRevealed bool
	phraseIndex   int
	stalled       bool
	result        string
	failure       string
	copied        bool

	// generation identifies the request that timers and responses belong to.
	// It moves forward on submit, on completion and on reset.
	generation uint64
	copyToken  uint64
	requestID  string
}

// New returns an idle controller.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	schedule := cfg.Scheduler
	if schedule == nil {
		schedule = TickScheduler
	}
	ctx := cfg.BaseContext
	if ctx == nil {
		ctx = context.Background()
	}
	return &Controller{
		schedule: schedule,
		logger:   logger,
		jobs:     newJobBus(ctx, cfg.Generator, logger),
		phase:    Idle,
	}
}

// SetInput replaces the reference the user is editing.
func (c *Controller) SetInput(value string) {
	c.input = value
}

// Submit starts a generation request for reference. A blank reference only
// reveals the input. While a request is in flight Submit does nothing.
func (c *Controller) Submit(reference string) tea.Cmd {
	if c.phase == InFlight {
		c.logger.Debug("submit ignored while request in flight", "request_id", c.requestID)
		return nil
	}
	if strings.TrimSpace(reference) == "" {
		c.phase = AwaitingInput
		c.inputRevealed = true
		c.logger.Debug("submit without reference; revealing input")
		return nil
	}

	c.generation++
	gen := c.generation
	c.requestID = uuid.NewString()
	c.result = ""
	c.failure = ""
	c.inputRevealed = false
	c.phraseIndex = 0
	c.stalled = false
	c.phase = InFlight
	c.logger.Info("generation request started", "request_id", c.requestID, "url", reference)

	return tea.Batch(
		c.schedule(PhraseInterval, rotateTickMsg{generation: gen}),
		c.schedule(StallThreshold, stallMsg{generation: gen}),
		c.jobs.Start(gen, c.requestID, reference),
	)
}

// Reset returns to Idle from any phase. An in-flight call keeps running but
// its response will be dropped.
func (c *Controller) Reset() {
	c.generation++
	c.copyToken++
	c.phase = Idle
	c.input = ""
	c.inputRevealed = false
	c.phraseIndex = 0
	c.stalled = false
	c.result = ""
	c.failure = ""
	c.copied = false
	c.logger.Debug("controller reset", "request_id", c.requestID)
}

// CopyEpoch identifies the result a clipboard copy was taken from. Pass it
// back to AcknowledgeCopy once the copy completes.
func (c *Controller) CopyEpoch() uint64 { return c.generation }

// AcknowledgeCopy records a successful clipboard copy taken at epoch. The
// acknowledgement reverts after CopyAckDuration; a newer acknowledgement
// restarts the wait. A copy that completes after a reset or a new submit is
// dropped.
func (c *Controller) AcknowledgeCopy(epoch uint64) tea.Cmd {
	if epoch != c.generation {
		c.logger.Debug("dropping stale copy acknowledgement", "request_id", c.requestID)
		return nil
	}
	c.copyToken++
	c.copied = true
	return c.schedule(CopyAckDuration, copyRevertMsg{token: c.copyToken})
}

// CopyFailed records a clipboard failure. It is logged only.
func (c *Controller) CopyFailed(err error) {
	c.logger.Warn("copy to clipboard failed", "error", err)
}

// DismissStall hides the busy-server notice for the current request.
func (c *Controller) DismissStall() {
	c.stalled = false
}

// HideInput collapses the revealed input without submitting.
func (c *Controller) HideInput() {
	c.inputRevealed = false
	if c.phase == AwaitingInput {
		c.phase = Idle
	}
}

// Update applies a controller message. The boolean reports whether msg
// belonged to the controller.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case rotateTickMsg:
		return c.handleRotateTick(msg), true
	case stallMsg:
		c.handleStall(msg)
		return nil, true
	case responseMsg:
		c.handleResponse(msg)
		return nil, true
	case copyRevertMsg:
		if msg.token == c.copyToken {
			c.copied = false
		}
		return nil, true
	}
	return nil, false
}

func (c *Controller) current(generation uint64) bool {
	return c.phase == InFlight && generation == c.generation
}

func (c *Controller) handleRotateTick(msg rotateTickMsg) tea.Cmd {
	if !c.current(msg.generation) {
		return nil
	}
	c.phraseIndex = (c.phraseIndex + 1) % len(progressPhrases)
	return c.schedule(PhraseInterval, rotateTickMsg{generation: msg.generation})
}

func (c *Controller) handleStall(msg stallMsg) {
	if !c.current(msg.generation) {
		return
	}
	c.stalled = true
	c.logger.Info("generation request slow; server likely busy", "request_id", c.requestID, "after", StallThreshold)
}

func (c *Controller) handleResponse(msg responseMsg) {
	if !c.current(msg.generation) {
		c.logger.Debug("dropping stale response", "request_id", msg.snapshot.ID, "status", msg.snapshot.Status)
		return
	}
	c.finish()
	if msg.err != nil {
		c.failure = FailureMessage(msg.err)
		c.phase = Failed
		c.logger.Warn("generation request failed", "request_id", msg.snapshot.ID, "error", msg.err)
		return
	}
	c.result = msg.email
	c.phase = Succeeded
	c.logger.Info("generation request succeeded", "request_id", msg.snapshot.ID, "duration", msg.snapshot.Duration)
}

// finish retires the current generation so that pending rotator ticks and the
// watchdog are dropped when they fire, and clears the stall flag.
func (c *Controller) finish() {
	c.generation++
	c.stalled = false
}

// Phase reports the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Busy reports whether a request is in flight.
func (c *Controller) Busy() bool { return c.phase == InFlight }

// Input returns the reference being edited.
func (c *Controller) Input() string { return c.input }

// InputRevealed reports whether the input should be shown because a submit
// was attempted without a reference.
func (c *Controller) InputRevealed() bool { return c.inputRevealed }

// PhraseIndex is the cursor into the progress phrases.
func (c *Controller) PhraseIndex() int { return c.phraseIndex }

// Phrase returns the current progress phrase, or "" outside InFlight.
func (c *Controller) Phrase() string {
	if c.phase != InFlight {
		return ""
	}
	return progressPhrases[c.phraseIndex]
}

// Stalled reports whether the in-flight request has exceeded StallThreshold.
func (c *Controller) Stalled() bool { return c.stalled }

// Result is the generated email after a successful request.
func (c *Controller) Result() string { return c.result }

// FailureMessage is the user-facing text of the last failure.
func (c *Controller) FailureMessage() string { return c.failure }

// Copied reports whether a copy was acknowledged within CopyAckDuration.
func (c *Controller) Copied() bool { return c.copied }

// RequestID identifies the most recent request in logs.
func (c *Controller) RequestID() string { return c.requestID }
