// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// MillisecondsBuckets are check duration buckets.
var MillisecondsBuckets = []float64{
	1,     // 1 ms is ~ instant
	10,    // 10 ms
	100,   // 100 ms
	250,   // 250 ms
	500,   // 500 ms
	1000,  // 1 second
	2500,  // 2.5 seconds
	5000,  // 5 seconds
	10000, // 10 seconds
	// anything larger than 10 seconds will be bucketed together
}
