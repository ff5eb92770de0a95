// Package worker implements the single-threaded loop that drives the
// stat worker process.
//
// The loop blocks on exactly one read of the input stream per
// buffer-refill step, then drains every complete frame already buffered
// before blocking again, so a peer that pipelines requests back-to-back
// costs one syscall, not one per frame. Each StatRequest produces
// exactly one StatResponse, in request order; the loop never batches or
// reorders across requests.
//
// There is no cancellation primitive inside the worker. It stops
// cooperatively, between frames: on a ShutdownRequest, on end of input,
// or on a read error (the last two are logged apart but treated
// identically). A malformed frame is fatal; the worker is disposable and
// its parent is expected to respawn it.
package worker
