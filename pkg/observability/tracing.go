package observability

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer provides distributed tracing capabilities. A disabled (or nil)
// tracer runs functions without opening segments.
type Tracer struct {
	serviceName string
	enabled     bool
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string, enabled bool) *Tracer {
	return &Tracer{
		serviceName: serviceName,
		enabled:     enabled,
	}
}

// Enabled reports whether segments are recorded
func (t *Tracer) Enabled() bool {
	return t != nil && t.enabled
}

// InstrumentAWS attaches X-Ray middleware to every client built from cfg
func (t *Tracer) InstrumentAWS(cfg *aws.Config) {
	if !t.Enabled() {
		return
	}
	awsv2.AWSV2Instrumentor(&cfg.APIOptions)
}

// TraceFunction wraps a function with a subsegment. A failure is recorded
// on the subsegment before it closes.
func (t *Tracer) TraceFunction(ctx context.Context, name string, fn func(context.Context) error) error {
	if !t.Enabled() {
		return fn(ctx)
	}
	return xray.Capture(ctx, name, func(ctx context.Context) error {
		t.AddAnnotation(ctx, "service", t.serviceName)
		err := fn(ctx)
		t.RecordError(ctx, err)
		return err
	})
}

// AddAnnotation adds an indexed annotation to the current segment
func (t *Tracer) AddAnnotation(ctx context.Context, key string, value interface{}) {
	if !t.Enabled() {
		return
	}
	if seg := xray.GetSegment(ctx); seg != nil {
		_ = seg.AddAnnotation(key, value)
	}
}

// RecordError records an error in the current segment
func (t *Tracer) RecordError(ctx context.Context, err error) {
	if !t.Enabled() || err == nil {
		return
	}
	if seg := xray.GetSegment(ctx); seg != nil {
		_ = seg.AddError(err)
	}
}
