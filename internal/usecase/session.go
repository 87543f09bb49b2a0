package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/scanlens/backend/internal/domain"
)

// SessionState is the scan lifecycle phase.
type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateScanning  SessionState = "scanning"
	StateResolving SessionState = "resolving"
	StateResolved  SessionState = "resolved"
	StateError     SessionState = "error"
)

// ScanSession holds the mutable per-page scan state. One instance lives inside
// the controller; Reset replaces it wholesale.
type ScanSession struct {
	State       SessionState
	LastBarcode domain.Barcode
	LastResult  *domain.LookupResult
}

// ResultSink receives lifecycle updates for rendering. Failures and misses are
// surfaced as inline messages through ShowResult, never as blocking dialogs.
type ResultSink interface {
	ShowLoading(barcode domain.Barcode)
	ShowResult(result domain.LookupResult)
}

// benignScanFailures are the messages the decode engine emits continuously
// while no code is in frame. They carry no signal and are dropped.
var benignScanFailures = []string{
	"No MultiFormat Readers",
	"No barcode or QR code detected",
}

// ScanController owns the scan session state machine:
//
//	Idle -> Scanning -> Resolving -> Resolved|Error -> (Reset) -> Idle
//
// The scan engine and the lookup are strictly sequenced: the engine is stopped
// before the lookup is issued, so a late decode callback can never land on top
// of an in-flight lookup. Everything runs on the caller's single goroutine;
// there is no concurrent writer to guard against.
type ScanController struct {
	engine  domain.ScanEngine
	gateway *LookupGateway
	sink    ResultSink
	session ScanSession
}

// NewScanController creates a controller in the Idle state.
func NewScanController(engine domain.ScanEngine, gateway *LookupGateway, sink ResultSink) *ScanController {
	return &ScanController{
		engine:  engine,
		gateway: gateway,
		sink:    sink,
		session: ScanSession{State: StateIdle},
	}
}

// Session returns a copy of the current session state.
func (c *ScanController) Session() ScanSession {
	return c.session
}

// Start moves the session into Scanning. Starting while a scan or lookup is
// already running is a no-op, matching the engine's own started guard.
func (c *ScanController) Start() {
	switch c.session.State {
	case StateScanning, StateResolving:
		log.Printf("[Scan] start ignored in state %s", c.session.State)
		return
	}
	c.session.State = StateScanning
}

// HandleDecode processes a successful decode callback. A decode that repeats
// the immediately-previous text is ignored: the engine re-reports the same
// code on every frame while it stays in view. A new code stops the engine,
// then issues exactly one lookup.
func (c *ScanController) HandleDecode(ctx context.Context, text string, format string) {
	if c.session.State != StateScanning {
		return
	}

	barcode := domain.Barcode(text)
	if barcode == c.session.LastBarcode {
		return
	}

	log.Printf("[Scan] decoded %s (%s)", text, format)
	c.session.LastBarcode = barcode
	c.session.State = StateResolving
	c.sink.ShowLoading(barcode)

	// Engine stop must complete before the lookup starts.
	if err := c.engine.Stop(ctx); err != nil {
		c.settle(domain.Failed(domain.KindInternalError, fmt.Sprintf("failed to stop scan engine: %v", err), 0))
		return
	}

	c.settle(c.gateway.Lookup(ctx, barcode))
}

// HandleDecodeFailure processes a decode-failure callback. It is never a state
// transition: the engine fires these continuously while no code is in frame.
// Only unexpected failure classes are logged.
func (c *ScanController) HandleDecodeFailure(message string) {
	for _, benign := range benignScanFailures {
		if strings.Contains(message, benign) {
			return
		}
	}
	log.Printf("[Scan] unexpected decode failure: %s", message)
}

// Reset returns the session to Idle, clearing the dedup memory so the same
// code can be scanned again.
func (c *ScanController) Reset() {
	c.session = ScanSession{State: StateIdle}
}

// settle records a lookup outcome: Failed results land in Error, everything
// else (Found and NotFound alike) in Resolved.
func (c *ScanController) settle(result domain.LookupResult) {
	c.session.LastResult = &result
	if result.Status == domain.StatusFailed {
		c.session.State = StateError
	} else {
		c.session.State = StateResolved
	}
	c.sink.ShowResult(result)
}
