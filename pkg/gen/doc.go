/*
Package gen builds random expression trees from a function set and a terminal
set, bounded by a maximum depth.

Two policies are supported: MethodFull always expands until the depth budget
is exhausted, so every leaf sits at exactly max depth; MethodGrow may stop
early at any level, producing irregular shapes bounded above by max depth.

Randomness is injected through the Rand interface so that generation is
reproducible given a fixed seed.
*/
package gen
