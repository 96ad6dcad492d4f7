/*
Package hashadt provides a generic open-addressing hash table with dynamic
array, singly-linked list, and bounded queue companions.

Table is the core type: a hash table parameterized over key and value types,
with caller-supplied hash and equality functions plus optional print and
cleanup hooks. It resolves collisions with linear probing and doubles its
bucket array whenever the load factor reaches 0.75.

Basic usage:

	import "github.com/theflywheel/hashadt"

	// Build a string-keyed table with the bundled xxHash callbacks
	table, err := hashadt.New[string, int](
		hashadt.HashString, hashadt.EqualString, nil, nil)
	if err != nil {
		log.Fatal(err)
	}

	// Insert and update
	table.Put("alpha", 1)
	prev, replaced := table.Put("alpha", 2) // prev == 1, replaced == true

	// Retrieve
	v, ok := table.Get("alpha")
	if ok {
		fmt.Println("Value:", v)
	}

	// Enumerate (bucket-slot order, not insertion order)
	for _, k := range table.Keys() {
		fmt.Println(k)
	}

	// Release, running the cleanup hook once per surviving pair
	table.Destroy()

Features:

  - Open addressing with linear probing for collision resolution
  - Automatic doubling resize when the load factor reaches 0.75
  - Caller-defined hashing and equality, with xxHash64 defaults for
    string, byte-slice, and uint64 keys
  - Optional print and cleanup hooks for diagnostics and teardown
  - Verbose Dump reporting size, capacity, displaced-entry collisions,
    and rehash count

Implementation Details:

The table owns one bucket array; each bucket is empty or holds exactly one
key-value pair. Put probes from hash(key) mod capacity, wrapping around,
and either updates a matching pair's value in place or claims the first
empty slot. Growth relocates existing pairs into the doubled array without
recreating them. There is no key removal: values can be overwritten, and
entries persist until Destroy.

Array, List, and Queue are independent companion containers with no
dependency on the table. All containers are single-threaded; concurrent
access requires external synchronization.
*/
package hashadt
