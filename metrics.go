package lockerroom

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/phanxgames/lockerroom"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// sessionMetrics holds the interaction instruments. They are no-ops unless
// the host installs a MeterProvider.
type sessionMetrics struct {
	selections  metric.Int64Counter
	transitions metric.Int64Counter
	hovers      metric.Int64Counter
	mode        metric.Int64ObservableGauge
	reg         metric.Registration
}

func newSessionMetrics(m metric.Meter, mode func() Mode) (*sessionMetrics, error) {
	sm := &sessionMetrics{}
	var err error

	sm.selections, err = m.Int64Counter(
		"lockerroom.selections",
		metric.WithDescription("Zones selected by the user"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating selections counter: %w", err)
	}

	sm.transitions, err = m.Int64Counter(
		"lockerroom.transitions.completed",
		metric.WithDescription("Camera transitions that reached their target"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	sm.hovers, err = m.Int64Counter(
		"lockerroom.hover.changes",
		metric.WithDescription("Changes of the hovered zone"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hover counter: %w", err)
	}

	sm.mode, err = m.Int64ObservableGauge(
		"lockerroom.mode",
		metric.WithDescription("Current interaction mode"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mode gauge: %w", err)
	}

	sm.reg, err = m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(sm.mode, int64(mode()))
			return nil
		},
		sm.mode,
	)
	if err != nil {
		return nil, fmt.Errorf("registering mode callback: %w", err)
	}

	return sm, nil
}

func (sm *sessionMetrics) selected(zoneID string) {
	sm.selections.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("zone", zoneID)))
}

func (sm *sessionMetrics) transitionDone(direction string) {
	sm.transitions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("direction", direction)))
}

func (sm *sessionMetrics) hoverChanged() {
	sm.hovers.Add(context.Background(), 1)
}

func (sm *sessionMetrics) close() error {
	if sm.reg == nil {
		return nil
	}
	return sm.reg.Unregister()
}
