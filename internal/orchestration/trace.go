package orchestration

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/revealtour/internal/tour"
)

// startSpan opens the "tour.run" span that covers one Run.
func (o *Orchestrator) startSpan(r *run) (context.Context, trace.Span) {
	return o.tracer.Start(context.Background(), "tour.run",
		trace.WithAttributes(
			attribute.String("tour.name", o.tour.Name()),
			attribute.String("tour.run_id", r.id),
			attribute.Int("tour.steps", o.tour.Len()),
		))
}

func (o *Orchestrator) stepEvent(r *run, name string, step tour.Step) {
	if r.span == nil {
		return
	}
	r.span.AddEvent(name, trace.WithAttributes(
		attribute.Int("tour.step", r.step),
		attribute.String("tour.step.kind", step.Kind.String()),
		attribute.String("tour.step.detail", step.String()),
	))
}

func (o *Orchestrator) endSpan(r *run) {
	if r.span == nil {
		return
	}
	r.span.SetAttributes(
		attribute.String("tour.status", r.status.String()),
		attribute.Int64("tour.elapsed_ms", r.elapsed.Milliseconds()),
	)
	if r.status == StatusCancelled {
		r.span.SetStatus(codes.Unset, "cancelled")
	} else {
		r.span.SetStatus(codes.Ok, "")
	}
	r.span.End()
	r.span = nil
}
