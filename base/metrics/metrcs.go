/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
- Counters of accepted and rejected requests: *.accepted, *.rejected with a reason tag
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/x-xyz/otc-market/base/env"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"
)

// Ender provides interface for BumpHistogram
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// default: true
	withPodName bool
}

// WithoutPodName means the metrics sent by the Service will not contain pod name
// Pod name produces a lot of custom metrics. If it is unnecessary to group metrics by pod name, using it to disable pod name tag
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client with package name as prefix.
// The sample rate comes from the metrics.sampleRate config key, 1 when unset.
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + env.EnvName(),
		"app:" + env.AppName(),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	sampleRate := viper.GetFloat64("metrics.sampleRate")
	if sampleRate <= 0 || sampleRate > 1 {
		sampleRate = 1
	}

	return &Metrics{
		pkgName:    pkgName,
		sampleRate: sampleRate,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

// Metrics prefixes every key with its package name and never lets a bump panic escape
type Metrics struct {
	pkgName    string
	sampleRate float64
	datadog    DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// guard reports a panic of a bump as a <typ>.panic counter
func (mt *Metrics) guard(typ, key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum(typ+".panic", 1, 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.guard("bumpavg", key, tags)
	mt.datadog.BumpAvg(mt.key(key), val, mt.sampleRate, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.guard("bumpsum", key, tags)
	mt.datadog.BumpSum(mt.key(key), val, mt.sampleRate, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.guard("bumphistogram", key, tags)
	mt.datadog.BumpHistogram(mt.key(key), val, mt.sampleRate, tags...)
}

// BumpTime starts a timer, End records it. Time a whole function with
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	defer mt.guard("bumptime", key, tags)
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.key(key), mt.sampleRate, tags...),
		panicHandler: func() {
			mt.datadog.BumpSum("bumptime.panic", 1, 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
		},
	}
}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()

	t.ddEnd.End()
}
