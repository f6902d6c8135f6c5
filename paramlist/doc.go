// Package paramlist provides generator-backed (parameter, value) lists —
// the minimal contract curve-sampling collaborators (stereographic
// projection, lemniscate generation) consume.
//
// What:
//
//   - ParameterList[T] pairs a generation function ƒ: complex → T with an
//     ordered list of entries, each a value with an optional parameter.
//   - AppendAt(param) evaluates the generator and records both the
//     parameter and the produced value; Append(value) records a value
//     without a parameter.
//   - Chain derives a new list by composing a second function onto the
//     generator and mapping the accumulated entries.
//
// Why:
//
//   - Sampled curves need the parameter kept alongside the produced
//     entity (for refinement and re-sampling), and derived quantities
//     need to stay aligned with the originals.
//
// Errors:
//
//   - ErrNoGenerator: AppendAt on a list built without a generator.
//   - ErrOutOfRange: index outside [0, Len()).
//
// Complexity: all operations O(1) except Chain, which is O(n).
package paramlist
