/*
Package weighttab precomputes weight tables for simulated neurons.

The idea is old and simple: when the input domain of an operation is
small and discrete, compute the result for every possible input once,
store it, and replace the arithmetic at inference time with an indexed
lookup. This package provides two flavors of such tables:

  - Table: a scalar table mapping every input in [0, numValues) to
    input * weight.
  - ComboTable: a table over all tuples of several discrete inputs,
    precomputing a named operation (product or sum, scaled by a weight)
    for every combination.

Tables are built exactly once and are read-only afterward, so they may
be shared freely across goroutines without locking. Lookups never
compute; an out-of-range input is reported through an explicit error
(ErrOutOfRange) rather than a numeric sentinel.

Further Reading

	https://en.wikipedia.org/wiki/Lookup_table
	https://en.wikipedia.org/wiki/Artificial_neuron

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package weighttab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'weighttab'
func tracer() tracing.Trace {
	return tracing.Select("weighttab")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
