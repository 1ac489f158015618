// Package greet emits greeting lines addressed to a named recipient.
//
// Every line has the fixed shape:
//
//	<phrase>, <recipient>!
//
// The phrase defaults to DefaultPhrase. The recipient is used verbatim, so an
// empty recipient yields "Hello, !". A Greeter keeps no per-call state and
// never retains the recipient after Greet returns.
package greet
