// Package matrix provides the dense row-major float64 container that
// distance-matrix builders return.
//
// What:
//
//   - Dense: rows×cols float64 storage in one flat backing slice.
//   - NewDense allocates a zeroed matrix; NewDenseFromFlat adopts an
//     already-filled flat slice (the parallel builders fill one cell
//     per worker write and wrap the result without copying).
//   - At/Set with strict bounds checking, Clone, Row, Stringer.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols ≤ 0.
//   - ErrIndexOutOfBounds:  row/col outside the matrix.
//   - ErrDataLength:        flat slice length ≠ rows·cols.
//
// All methods are O(1) except Clone, Row and String (O(cells) / O(cols)).
package matrix
