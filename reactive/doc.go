// Package reactive implements a synchronous reactive graph of signals,
// computeds and effects.
//
// Reading a signal or computed inside a computed or effect records a
// dependency edge. Writing a signal marks everything downstream stale and
// flushes: stale computeds are re-evaluated by pulling their own stale
// dependencies first, so no node ever sees a mix of old and new values,
// and effects run last, once per flush, against fully settled state.
//
//	rs := reactive.NewReactiveSystem()
//	count := reactive.CreateSignal(rs, 1)
//	double := reactive.CreateMemo(rs, func() int { return count.Value() * 2 })
//	reactive.Watch(rs, func() { fmt.Println(double.Value()) }) // 2
//	count.SetValue(5)                                         // 10
//	count.SetValue(5)                                         // nothing
//
// A ReactiveSystem is single-threaded. Nothing in this package blocks.
package reactive
