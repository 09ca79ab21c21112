// Package zcrc computes parametrized Cyclic Redundancy Checks.
//
// A CRC family is described by the classic Rocksoft six-parameter model:
// width W in [1,64] bits, generator polynomial P, initial register value I,
// an input-reflection flag, an output-reflection flag, and a final XOR
// mask. Given a Params value for a family and a byte slice, Compute (or the
// lower-level Process/Finalize pair) produces the standard checksum.
//
// Beyond the basic checksum, this package supports combining two
// independently-computed partial checksums over adjacent spans (Combine),
// extending a running checksum by a known number of implicit trailing zero
// bytes in O(log n) (ProcessZeroBytes), and checking whether a message's
// trailing bytes carry a valid self-checksum (IsValid) without needing to
// Finalize first.
//
//	n := zcrc.Crc32C.Compute([]byte("123456789"))
//	// n == 0xE3069283
//
// Defining a Params is cheap: it does not build any lookup table. Tables
// are built once per (width, polynomial, orientation, slice width) the
// first time that combination is actually processed, and then shared for
// the life of the program.
package zcrc
