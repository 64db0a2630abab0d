// Package iterator gives indexable objects and zero-argument callables an
// iteration protocol without those objects implementing iteration themselves.
//
// Two adapters are provided:
//
//   - SequenceIterator walks an object.Indexable forward from index 0, or in
//     reverse from length-1, translating an index-out-of-range lookup into
//     end of iteration.
//   - CallableIterator invokes an object.Callable until it returns a value
//     equal to a sentinel.
//
// Exhaustion is reported as an error satisfying errors.IsStopIteration. It is
// a normal control signal: once returned, every later Next returns it again.
//
// Both adapters are safe for concurrent Next calls without external locking.
// SequenceIterator hands each index to exactly one caller via an atomic
// fetch-and-add on its cursor. CallableIterator latches done atomically; two
// callers racing at the end may each invoke the callable once, but no call is
// made after the latch is visibly set.
//
// # Usage
//
//	it := iterator.Iter(object.NewList(1, 2, 3))
//	for v, err := range iterator.All(it) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v)
//	}
package iterator
