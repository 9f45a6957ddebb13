// Package solution defines the final routed grid and its text format: one
// non-negative integer per cell, net_id+1 for a routed cell and 0 for an
// untouched obstacle cell, grouped into 1-based layers.
package solution
