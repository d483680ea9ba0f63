// Package zaptrace reports the structural events of an inftable.Table as zap debug
// records.
package zaptrace

import (
	"go.uber.org/zap"

	"github.com/aglyzov/go-inftable/inftable"
)

var _ inftable.Tracer = (*Tracer)(nil)

// Tracer is an inftable.Tracer backed by a zap.Logger.
type Tracer struct {
	log *zap.Logger
}

// New returns a Tracer writing to the named "inftable" child of the logger.
// A nil logger yields a no-op tracer.
func New(log *zap.Logger) *Tracer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracer{log: log.Named("inftable")}
}

func (t *Tracer) OnSplit(level, slot int, existing, incoming string) {
	t.log.Debug("split",
		zap.Int("level", level),
		zap.String("slot", slotName(slot)),
		zap.String("existing", existing),
		zap.String("incoming", incoming),
	)
}

func (t *Tracer) OnCollapse(level, slot int, survivor string) {
	t.log.Debug("collapse",
		zap.Int("level", level),
		zap.String("slot", slotName(slot)),
		zap.String("survivor", survivor),
	)
}

func slotName(slot int) string {
	if slot == inftable.TerminalSlot {
		return "$"
	}
	return string(rune('a' + slot))
}
