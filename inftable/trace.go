package inftable

// Tracer receives structural events of a Table.
type Tracer interface {
	// OnSplit is called after the slot of a node at the given level was expanded
	// into a child node holding the existing and the incoming key.
	OnSplit(level, slot int, existing, incoming string)
	// OnCollapse is called after a child node under the slot was replaced by its
	// only remaining entry.
	OnCollapse(level, slot int, survivor string)
}

// NopTracer is a Tracer that does nothing.
var NopTracer Tracer = nopTracer{}

type nopTracer struct{}

func (nopTracer) OnSplit(level, slot int, existing, incoming string) {}

func (nopTracer) OnCollapse(level, slot int, survivor string) {}

// TracerFuncs adapts plain functions to a Tracer. Nil fields are skipped.
type TracerFuncs struct {
	Split    func(level, slot int, existing, incoming string)
	Collapse func(level, slot int, survivor string)
}

func (f TracerFuncs) OnSplit(level, slot int, existing, incoming string) {
	if f.Split != nil {
		f.Split(level, slot, existing, incoming)
	}
}

func (f TracerFuncs) OnCollapse(level, slot int, survivor string) {
	if f.Collapse != nil {
		f.Collapse(level, slot, survivor)
	}
}

type config struct {
	tracer Tracer
}

// Option configures a Table.
type Option func(*config)

// WithTracer installs a tracer. A nil tracer restores NopTracer.
func WithTracer(tr Tracer) Option {
	return func(cfg *config) {
		if tr == nil {
			tr = NopTracer
		}
		cfg.tracer = tr
	}
}
