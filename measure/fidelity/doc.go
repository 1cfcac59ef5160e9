// Package fidelity measures how cleanly a resampler reproduces a pure tone.
//
// [Measure] converts a sine from Config.SourceRate to Config.TargetRate and
// analyses the settled output with a windowed FFT. Everything outside the
// tone's main lobe counts as noise: interpolation error, images and aliases.
// [AnalyzeSignal] runs the same analysis on arbitrary samples.
package fidelity
