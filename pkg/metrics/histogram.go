package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NewBoundedHistogramVec returns a histogram for values known to lie in
// [min, max]. Unless opts sets buckets, it gets count linear buckets
// across the range. Native histograms are enabled alongside them.
func NewBoundedHistogramVec(opts prometheus.HistogramOpts, min, max float64, count int, labelNames []string) *prometheus.HistogramVec {
	if opts.Buckets == nil && count > 0 && max > min {
		opts.Buckets = prometheus.LinearBuckets(min+(max-min)/float64(count), (max-min)/float64(count), count)
	}
	if opts.NativeHistogramBucketFactor == 0 {
		opts.NativeHistogramBucketFactor = 1.1
	}
	if opts.NativeHistogramMaxBucketNumber == 0 {
		opts.NativeHistogramMaxBucketNumber = 160
	}
	if opts.NativeHistogramMinResetDuration == 0 {
		// Generated values never change shape, so keep buckets for a day.
		opts.NativeHistogramMinResetDuration = 24 * time.Hour
	}

	return prometheus.NewHistogramVec(opts, labelNames)
}
