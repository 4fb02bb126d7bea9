package rop

import (
	"sync/atomic"
)

// Interrupt is the cooperative cancellation flag polled by the scene
// and animation visitors. Safe to raise from another goroutine.
type Interrupt struct {
	flag int32
}

func (i *Interrupt) Interrupt()        { atomic.StoreInt32(&i.flag, 1) }
func (i *Interrupt) Interrupted() bool { return atomic.LoadInt32(&i.flag) != 0 }
func (i *Interrupt) Reset()            { atomic.StoreInt32(&i.flag, 0) }
