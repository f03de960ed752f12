package event

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Source is the blocking event stream the loop pulls from.
// *x11.Connection satisfies it.
type Source interface {
	WaitForEvent() (xgb.Event, xgb.Error)
	Flush()
}

// Subscriber installs the event mask. *x11.Window satisfies it.
type Subscriber interface {
	SetAttributes(mask uint32, values ...uint32)
}

// Stats counts what the dispatcher did with each kind.
type Stats struct {
	Handled   [kindCount]int
	Discarded [kindCount]int
	Errors    int // asynchronous protocol errors
	Unknown   int // events whose kind is outside the routed set
}

// Totals sums handled and discarded events over all kinds.
func (s Stats) Totals() (handled, discarded int) {
	for k := range kindCount {
		handled += s.Handled[k]
		discarded += s.Discarded[k]
	}
	return handled, discarded
}

// Dispatcher runs the event loop for one handler.
type Dispatcher struct {
	source Source
	routes [kindCount]route
	logger *slog.Logger
	stats  Stats
}

// NewDispatcher resolves which kinds handler can receive. The set is fixed
// for the lifetime of the dispatcher.
func NewDispatcher(source Source, handler any, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		source: source,
		routes: routesFor(handler),
		logger: logger,
	}
	var handled []string
	for _, k := range Kinds() {
		if d.Handles(k) {
			handled = append(handled, k.String())
		}
	}
	logger.Debug("event routes resolved", "handled", handled)
	return d
}

// Handles reports whether events of kind k reach the handler.
func (d *Dispatcher) Handles(k Kind) bool {
	return k.Valid() && d.routes[k] != nil
}

// Stats returns the counters accumulated so far.
func (d *Dispatcher) Stats() Stats {
	return d.stats
}

// Dispatch routes one decoded event. It reports whether a handler received
// it.
func (d *Dispatcher) Dispatch(ev xgb.Event) bool {
	k := Classify(ev)
	if !k.Valid() {
		d.stats.Unknown++
		d.logger.Debug("event of unknown kind dropped", "kind", k)
		return false
	}
	if r := d.routes[k]; r != nil && r(ev) {
		d.stats.Handled[k]++
		return true
	}
	d.stats.Discarded[k]++
	d.logger.Debug("event discarded", "kind", k)
	return false
}

// Run subscribes target to EventMask and processes events in delivery order
// until the connection is lost. The source is flushed after every
// iteration so requests issued by handlers go out before the next wait.
func (d *Dispatcher) Run(target Subscriber) Stats {
	target.SetAttributes(xproto.CwEventMask, EventMask)
	d.source.Flush()

	for {
		ev, xerr := d.source.WaitForEvent()
		if ev == nil && xerr == nil {
			handled, discarded := d.stats.Totals()
			d.logger.Info("event loop finished",
				"handled", handled,
				"discarded", discarded,
				"protocol_errors", d.stats.Errors)
			return d.stats
		}
		if xerr != nil {
			d.stats.Errors++
			d.logger.Warn("protocol error",
				"error", xerr.Error(),
				"sequence", xerr.SequenceId(),
				"resource", fmt.Sprintf("%#x", xerr.BadId()))
		}
		if ev != nil {
			d.Dispatch(ev)
		}
		d.source.Flush()
	}
}
