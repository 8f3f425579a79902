// Package random should be used in preference to the math/rand package
// whenever a random number is required inside the emulation, such as for
// randomising RAM and register contents on power-up.
//
// Random numbers are seeded from the current cycle count added to a base
// seed taken from the wall clock at process start. With ZeroSeed set the
// base seed is left out, so draws depend only on the cycle count.
package random
