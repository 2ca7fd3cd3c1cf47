/*
Package chaining implements a hash table that resolves collisions by chaining
and bounds their expected number with universal hashing.

Every table instance draws a hash function h(k) = ((a*k + b) mod p) mod m
with random coefficients a and b, where p is the Mersenne prime 2^31-1 and m
is the current bucket count. The table grows by doubling once the load factor
reaches the configured maximum (0.75 by default) and shrinks by halving when
deletions push the load factor below 0.25, never below 16 buckets. Either way
the whole table is rehashed through a freshly drawn hash function, so bucket
assignment is not preserved across resizes.

The table is not safe for concurrent use; callers that share one instance
across goroutines must serialize access themselves.

Basic usage:

	ht := chaining.NewDefault[string, int](chaining.StringKey)
	ht.Set("one", 1)
	v, ok := ht.Get("one")
	removed := ht.Delete("one")
*/
package chaining
