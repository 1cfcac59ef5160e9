// Package resample provides streaming sample-rate conversion driven by the
// interpolation kernels of package interp.
//
// A [Resampler] converts contiguous chunks of float32 samples and carries
// the last K-1 input samples from one Process call to the next. By default
// each call rebuilds the kernel window from that history, restarts the read
// cursor and drops its first two positions; the default sinc kernel warms up
// again on every call. [WithPhaseCarry] instead carries the fractional read
// position and window across calls, so feeding a signal in chunks yields
// exactly the output of feeding it at once. The rate pair is passed per call.
//
// A [Converter] is the pull-mode equivalent: it reads input one sample at a
// time from a [Source] (for example a ring-buffer consumer) and produces one
// output sample per Next call.
//
// A [Bank] runs one independent Resampler per channel over interleaved frames.
//
// Common workflows:
//   - New(opts...) then Process(in, out, srcHz, dstHz) per chunk
//   - NewConverter(src, srcHz, dstHz, opts...) then Next / Read
//   - Resample(input, srcHz, dstHz, opts...) as a one-shot helper
package resample
