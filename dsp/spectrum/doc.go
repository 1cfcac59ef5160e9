// Package spectrum computes power spectra of float32 sample frames.
//
// [Analyzer] windows a frame, runs a real-input FFT through algo-fft and
// returns the one-sided power |X[k]|^2 for bins 0..N/2. [Power] converts
// complex bins produced elsewhere.
package spectrum
