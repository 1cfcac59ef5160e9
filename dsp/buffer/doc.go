// Package buffer provides a bounded single-producer/single-consumer sample
// queue and a Source adapter that turns its consumer into an endless stream.
//
// NewRing splits one ring into a [Producer] and a [Consumer] handle. Each
// handle belongs to exactly one goroutine; the two sides synchronise only
// through atomic counters, so neither Push nor Pop ever blocks. A full queue
// rejects the sample with [ErrFull]; an empty queue reports false, which the
// [Source] adapter turns into silence.
package buffer
