// Package compute provides the worker split used by per-pixel renders.
//
// The active backend defaults to one worker per CPU:
//
//	compute.GetBackend().ParallelFor(width, 8, func(start, end int) {
//	    for x := start; x < end; x++ {
//	        // independent column work
//	    }
//	})
//
// Use [Serial] to keep everything on the calling goroutine.
package compute
