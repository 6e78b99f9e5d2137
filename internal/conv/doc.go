// Package conv provides checked integer conversions.
//
// Every failure wraps datakit.ErrOverflow. For conversions that are provably
// safe by construction (loop indices, bounded counters), use direct casts.
package conv
