// SPDX-License-Identifier: MIT
//
// Package dsu provides an array-backed disjoint-set forest (union-find)
// over the integers 0..n-1.
//
// What:
//
//   - Find returns the representative of an element's set, compressing the
//     path it walked so later lookups are shorter.
//   - Union merges two sets by rank; it is a no-op for identical elements or
//     elements already in the same set.
//   - Connected reports whether two elements share a representative.
//
// Why:
//
//   - Maze generators use it for cycle detection: a wall between two cells
//     may be removed without creating a loop iff the cells are not yet
//     connected.
//
// Complexity:
//
//   - Find, Union, Connected: amortized O(α(n)), where α is the inverse
//     Ackermann function.
//   - Memory: O(n).
//
// Indices are trusted: callers derive them from row*width+col and never pass
// values outside [0, n). The structure is not safe for concurrent mutation.
package dsu
