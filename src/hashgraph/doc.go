// Package hashgraph implements the bounded-memory state layer of the braid
// consensus engine.
//
// The hashgraph is a directed acyclic graph of Events which is distributed
// among participants through gossip. Consensus on a total order of Events
// emerges from the structure of the DAG itself, without further
// communication. This package does not implement the ordering algorithm; it
// implements the Store that such an algorithm relies on: an in-memory,
// multi-index, bounded cache of Events, rounds, consensus order, and
// per-participant checkpoint Roots.
//
// Because the caches are bounded, the logical history of the hashgraph can
// outgrow its physical representation. The Store's contract is that anything
// older than the retained windows is summarised by the Roots, and that
// lookups either return consistent data or a tagged StoreErr that tells the
// caller whether the absence is expected (sync and retry) or a genuine
// consistency problem.
package hashgraph
