// Package grid represents real scalar fields sampled on a uniform 3D cubic
// grid, as used for gridded density data in large-scale-structure analysis.
//
// The package provides the Field type with its validation and statistics,
// deterministic generators for synthetic fields, and load/save support for
// the flat binary grid format (n³ little-endian float64 samples, row-major,
// no header).
package grid
