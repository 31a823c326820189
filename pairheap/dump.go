package pairheap

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mikeydub/go-pairheap/service/logger"
)

// DumpContents logs every live slot of the heap at debug level, one entry per
// slot in raw array order plus a summary entry. Debugging aid only; the slot
// order is the array layout, not extraction order.
func (h *Heap) DumpContents(ctx context.Context) {
	logger.For(ctx).WithFields(logrus.Fields{
		"size":     h.Size(),
		"capacity": h.Capacity(),
	}).Debug("heap contents")

	for i, p := range h.pairs {
		logger.For(ctx).WithFields(logrus.Fields{
			"pos":      i,
			"priority": p.Priority,
			"element":  p.Element,
		}).Debug("heap slot")
	}
}
