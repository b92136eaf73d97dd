// Package rect rotates four-corner rectangles about their center.
//
// A [Rect] stores its corners as two parallel arrays, X and Y, in the order
// top-left, top-right, bottom-left, bottom-right. The pivot of every rotation
// is the midpoint of corners 1 and 2 (the top-right/bottom-left diagonal).
// The corners are not validated: any eight values form a Rect, and NaN or Inf
// coordinates propagate through the arithmetic.
//
// Two kernels compute the same transform. [Rect.RotateCenter] works one
// coordinate at a time; [Rect.RotateCenterVec4] treats the X and Y arrays as
// 4-lane float32 vectors. [Rects.RotateCenter] and [RotateAll] probe the CPU
// once per call through package cpu and apply a single [Rotator] to every
// element, so a bulk call never mixes kernels.
package rect
