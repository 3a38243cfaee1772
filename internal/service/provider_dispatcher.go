package service

import (
	"context"
	"fmt"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/internal/metrics"
	"vas-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// ProviderDispatcherImpl implements C5: pure routing from a provider code
// to its registered adapter. Any dispatch failure — unknown code, a
// tripped circuit breaker, or a panic inside the adapter — folds into a
// normalized FAILED response; nothing ever propagates as an error.
type ProviderDispatcherImpl struct {
	adapters map[string]ports.ProviderAdapter
	breakers map[string]*gobreaker.CircuitBreaker
	metrics  *metrics.Metrics
	log      zerolog.Logger
}

// SetMetrics attaches a Prometheus metrics sink. Safe to leave unset — a
// nil sink disables instrumentation without changing dispatch behavior.
func (d *ProviderDispatcherImpl) SetMetrics(m *metrics.Metrics) {
	d.metrics = m
}

// NewProviderDispatcher creates a new ProviderDispatcherImpl. cbWindow and
// cbTrips configure one circuit breaker per registered provider code.
func NewProviderDispatcher(adapters map[string]ports.ProviderAdapter, cbWindow time.Duration, cbTrips uint32, log zerolog.Logger) *ProviderDispatcherImpl {
	breakers := make(map[string]*gobreaker.CircuitBreaker, len(adapters))
	for code := range adapters {
		providerCode := code
		breakers[code] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "provider:" + providerCode,
			MaxRequests: 1,
			Interval:    cbWindow,
			Timeout:     cbWindow,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cbTrips
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("provider circuit breaker state change")
			},
		})
	}
	return &ProviderDispatcherImpl{adapters: adapters, breakers: breakers, log: log}
}

func failedResponse(code, message string) domain.NormalizedResponse {
	return domain.NormalizedResponse{
		ResponseCode:    code,
		ResponseMessage: message,
	}
}

// Vend routes a vend request to the provider's adapter, per C5.
func (d *ProviderDispatcherImpl) Vend(ctx context.Context, providerCode string, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	return d.call(providerCode, func(adapter ports.ProviderAdapter) domain.NormalizedResponse {
		return adapter.Vend(ctx, account, req)
	})
}

// Requery routes a status lookup to the provider's adapter, per C5.
func (d *ProviderDispatcherImpl) Requery(ctx context.Context, providerCode string, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	return d.call(providerCode, func(adapter ports.ProviderAdapter) domain.NormalizedResponse {
		return adapter.Requery(ctx, account, txn)
	})
}

func (d *ProviderDispatcherImpl) call(providerCode string, fn func(ports.ProviderAdapter) domain.NormalizedResponse) (resp domain.NormalizedResponse) {
	start := time.Now()
	defer func() {
		if d.metrics == nil {
			return
		}
		d.metrics.ProviderCallsTotal.WithLabelValues(providerCode, resp.ResponseCode).Inc()
		d.metrics.ProviderCallLatency.WithLabelValues(providerCode).Observe(time.Since(start).Seconds())
	}()

	adapter, ok := d.adapters[providerCode]
	if !ok {
		return failedResponse(apperror.CodeProviderFailure, fmt.Sprintf("provider %s not configured", providerCode))
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Str("provider", providerCode).Msg("provider adapter panicked")
			resp = failedResponse(apperror.CodeProviderFailure, fmt.Sprintf("provider adapter panic: %v", r))
		}
	}()

	breaker, hasBreaker := d.breakers[providerCode]
	if !hasBreaker {
		return fn(adapter)
	}

	result, err := breaker.Execute(func() (interface{}, error) {
		r := fn(adapter)
		if r.ResponseCode == apperror.CodeProviderFailure {
			return r, fmt.Errorf("provider failure: %s", r.ResponseMessage)
		}
		return r, nil
	})
	if err != nil {
		if result != nil {
			return result.(domain.NormalizedResponse)
		}
		return failedResponse(apperror.CodeProviderFailure, err.Error())
	}
	return result.(domain.NormalizedResponse)
}
