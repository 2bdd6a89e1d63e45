package golang

import "strconv"

// localNameAllocator hands out the temporary identifiers of one
// property's generated traversal: loop indexes, element captures, key
// snapshots and accumulators. Names are a pure function of per-kind
// counters, so repeated runs emit byte-identical output; reset starts
// the numbering over for the next property.
type localNameAllocator struct {
	indexes int
	values  int
	keySets int
	keys    int
	xors    int
	others  int
	hashes  int
}

func (a *localNameAllocator) next(prefix string, n *int) string {
	name := prefix + "_" + strconv.Itoa(*n)
	*n++
	return name
}

// nextIndex returns the loop index name of the next array level.
func (a *localNameAllocator) nextIndex() string { return a.next("index", &a.indexes) }

// nextValue returns the capture name of the next fetched element.
func (a *localNameAllocator) nextValue() string { return a.next("value", &a.values) }

// nextKeys returns the name of the next dictionary key snapshot.
func (a *localNameAllocator) nextKeys() string { return a.next("keys", &a.keySets) }

// nextKey returns the loop key name of the next dictionary level.
func (a *localNameAllocator) nextKey() string { return a.next("key", &a.keys) }

// nextXor returns the name of the next order-independent accumulator.
func (a *localNameAllocator) nextXor() string { return a.next("xor", &a.xors) }

// nextOther returns the capture name of the next right-hand value.
func (a *localNameAllocator) nextOther() string { return a.next("other", &a.others) }

// nextHash returns the name of the next per-key hash accumulator.
func (a *localNameAllocator) nextHash() string { return a.next("hash", &a.hashes) }

// reset starts the numbering over. Call it between properties.
func (a *localNameAllocator) reset() { *a = localNameAllocator{} }
