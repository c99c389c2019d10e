package stack

// Pattern is the byte written to every unused stack location at startup.
//
// The value is chosen to be unlikely to appear as an incidental value in
// normal stack contents, so that its later absence signals "this byte has
// been used". External tooling (e.g. a memory inspector) can match against
// it to recognize the fill.
const Pattern byte = 0x5A
