package normalizer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/vslplot-go/pkg/logger"
	"github.com/ukaji3/vslplot-go/pkg/vslplot/models"
)

// Options configures trace normalization.
type Options struct {
	// CustomKeys are accepted for every trace type in addition to the registry fields.
	// If nil, DefaultCustomKeys is used.
	CustomKeys []string
	// KeepZero keeps false and numeric zero values that pruning would otherwise drop.
	KeepZero bool
	// Workers normalizes traces concurrently when greater than 1.
	Workers int
}

// Normalizer filters, prunes and fixes up traces against a Registry.
type Normalizer struct {
	registry   *Registry
	customKeys map[string]struct{}
	keepZero   bool
	workers    int
}

// New returns a Normalizer backed by registry.
func New(registry *Registry, opts Options) *Normalizer {
	keys := opts.CustomKeys
	if keys == nil {
		keys = DefaultCustomKeys
	}
	custom := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		custom[k] = struct{}{}
	}
	return &Normalizer{
		registry:   registry,
		customKeys: custom,
		keepZero:   opts.KeepZero,
		workers:    opts.Workers,
	}
}

// accepts reports whether field survives filtering for t.
func (n *Normalizer) accepts(t models.TraceType, field string) bool {
	if _, ok := n.customKeys[field]; ok {
		return true
	}
	return n.registry.Accepts(t, field)
}

// NormalizeTrace normalizes the trace at position index. The input is not modified.
func (n *Normalizer) NormalizeTrace(ctx context.Context, index int, trace models.Trace) (models.NormalizedTrace, error) {
	log := logger.FromContext(ctx).With("trace", index)

	fields, err := deepCopyMap(trace)
	if err != nil {
		return models.NormalizedTrace{}, fmt.Errorf("trace %d: %w", index, err)
	}

	id, present := fields[models.TraceTypeKey]
	delete(fields, models.TraceTypeKey)
	if !present {
		return models.NormalizedTrace{}, &UnknownTraceTypeError{Index: index}
	}
	t, ok := n.registry.Resolve(id)
	if !ok {
		return models.NormalizedTrace{}, &UnknownTraceTypeError{Index: index, Value: id}
	}

	for k := range fields {
		if !n.accepts(t, k) {
			log.Debug("Dropping unsupported field", "type", t, "field", k)
			delete(fields, k)
		}
	}

	prune(fields, n.keepZero)

	if err := applyFixups(index, t, fields); err != nil {
		return models.NormalizedTrace{}, err
	}

	return models.NormalizedTrace{Type: t, Fields: fields}, nil
}

// NormalizeAll normalizes traces in order. The first failing trace aborts the batch.
func (n *Normalizer) NormalizeAll(ctx context.Context, traces []models.Trace) ([]models.NormalizedTrace, error) {
	out := make([]models.NormalizedTrace, len(traces))
	if n.workers <= 1 {
		for i, trace := range traces {
			nt, err := n.NormalizeTrace(ctx, i, trace)
			if err != nil {
				return nil, err
			}
			out[i] = nt
		}
		return out, nil
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(n.workers)
	for i, trace := range traces {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			nt, err := n.NormalizeTrace(gctx, i, trace)
			if err != nil {
				return err
			}
			out[i] = nt
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
