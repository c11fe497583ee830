package array

import (
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/xseq/lib/infra"
	"github.com/benz9527/xseq/lib/xlog"
)

const growableMinCapacity int64 = 2

// ClearPolicy decides what happens to the allocated block on Clear.
type ClearPolicy uint8

const (
	// ClearRetainCapacity keeps the current block, only the live slots are zeroed.
	ClearRetainCapacity ClearPolicy = iota
	// ClearResetCapacity drops the block and allocates one of the initial capacity.
	ClearResetCapacity
	_clearPolicyMax
)

type growableOptions struct {
	initialCapacity int64
	clearPolicy     ClearPolicy
	logger          xlog.XLogger
	statsName       string
	meterProvider   metric.MeterProvider
	isStatsEnabled  bool
}

func (opts *growableOptions) apply() {
	if opts.initialCapacity < growableMinCapacity {
		opts.initialCapacity = growableMinCapacity
	}
	if opts.logger == nil {
		opts.logger = xlog.NewNopXLogger()
	}
}

type GrowableOption func(*growableOptions) error

// WithGrowableInitialCapacity sets the first block size.
// Values less than 2 are raised to 2, so the first doubling never starts from zero.
func WithGrowableInitialCapacity(capacity int64) GrowableOption {
	return func(opts *growableOptions) error {
		opts.initialCapacity = capacity
		return nil
	}
}

func WithGrowableClearPolicy(policy ClearPolicy) GrowableOption {
	return func(opts *growableOptions) error {
		if policy >= _clearPolicyMax {
			return infra.NewErrorStack("[growable-seq] unknown clear policy")
		}
		opts.clearPolicy = policy
		return nil
	}
}

func WithGrowableLogger(logger xlog.XLogger) GrowableOption {
	return func(opts *growableOptions) error {
		if logger == nil {
			return infra.NewErrorStack("[growable-seq] nil logger")
		}
		opts.logger = logger
		return nil
	}
}

// WithGrowableStats enables the otel metrics of the sequence.
// The global meter provider is used unless one is given.
func WithGrowableStats(name string, mp ...metric.MeterProvider) GrowableOption {
	return func(opts *growableOptions) error {
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			name = "default"
		}
		opts.statsName = name
		opts.isStatsEnabled = true
		if len(mp) > 0 && mp[0] != nil {
			opts.meterProvider = mp[0]
		}
		return nil
	}
}
