// Package interp provides the interpolation kernels used by the streaming
// resampler.
//
// A [Kernel] owns an interpolation window: the most recent K input samples,
// oldest first. Pushing a sample drops the oldest one, so the window always
// holds exactly K entries. Interpolate evaluates the signal at a fractional
// offset t in [0,1) between the two samples around the window's origin.
//
// Available kernels, from cheapest to highest quality:
//
//   - [Linear]: 2 taps, a + t*(b-a)
//   - [Cubic]:  4-point cubic Hermite
//   - [Sinc]:   N-tap windowed sinc, N chosen at construction (default 8)
//
// [Kernel.Load] preloads a whole window at once. A Sinc built with
// [WithWarmup] then starts interpolating at the oldest slot and moves its
// origin towards the centre as samples arrive.
//
// [New] builds a kernel from a [Mode], which is how the resampler and the
// rsinfo command select them.
package interp
