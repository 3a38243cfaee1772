package service

import (
	"context"
	"testing"
	"time"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/internal/core/ports/mocks"
	"vas-gateway/internal/metrics"
	"vas-gateway/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// panickingAdapter stands in for a C4 adapter that panics instead of
// returning — e.g. a nil-pointer dereference deep in a SOAP/XML decoder.
type panickingAdapter struct{}

func (panickingAdapter) Vend(ctx context.Context, account *domain.ProviderAccount, req ports.VendRequest) domain.NormalizedResponse {
	panic("unexpected adapter failure")
}

func (panickingAdapter) Requery(ctx context.Context, account *domain.ProviderAccount, txn *domain.Transaction) domain.NormalizedResponse {
	panic("unexpected adapter failure")
}

func (panickingAdapter) GetBalance(ctx context.Context, account *domain.ProviderAccount) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func TestDispatcher_Vend_AdapterPanic_RecoversToProviderFailure(t *testing.T) {
	d := NewProviderDispatcher(map[string]ports.ProviderAdapter{"MTN": panickingAdapter{}}, time.Minute, 5, newTestLogger())

	resp := d.Vend(context.Background(), "MTN", &domain.ProviderAccount{}, ports.VendRequest{})
	assert.Equal(t, apperror.CodeProviderFailure, resp.ResponseCode)
}

func TestDispatcher_Vend_UnknownProvider_ReturnsProviderFailure(t *testing.T) {
	d := NewProviderDispatcher(map[string]ports.ProviderAdapter{}, time.Minute, 5, newTestLogger())

	resp := d.Vend(context.Background(), "GHOST", &domain.ProviderAccount{}, ports.VendRequest{})
	assert.Equal(t, apperror.CodeProviderFailure, resp.ResponseCode)
}

func TestDispatcher_Vend_Success_RoutesToAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	adapter := mocks.NewMockProviderAdapter(ctrl)

	ctx := context.Background()
	account := &domain.ProviderAccount{}
	req := ports.VendRequest{MerchantRef: "ORD-1"}
	adapter.EXPECT().Vend(ctx, account, req).Return(domain.NormalizedResponse{ResponseCode: apperror.CodeSuccess, ProviderRef: "PRV-1"})

	d := NewProviderDispatcher(map[string]ports.ProviderAdapter{"MTN": adapter}, time.Minute, 5, newTestLogger())
	resp := d.Vend(ctx, "MTN", account, req)
	assert.Equal(t, apperror.CodeSuccess, resp.ResponseCode)
	assert.Equal(t, "PRV-1", resp.ProviderRef)
}

func TestDispatcher_Requery_RoutesToAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	adapter := mocks.NewMockProviderAdapter(ctrl)

	ctx := context.Background()
	account := &domain.ProviderAccount{}
	txn := &domain.Transaction{MerchantRef: "ORD-1"}
	adapter.EXPECT().Requery(ctx, account, txn).Return(domain.NormalizedResponse{ResponseCode: apperror.CodePending})

	d := NewProviderDispatcher(map[string]ports.ProviderAdapter{"MTN": adapter}, time.Minute, 5, newTestLogger())
	resp := d.Requery(ctx, "MTN", account, txn)
	assert.Equal(t, apperror.CodePending, resp.ResponseCode)
}

func TestDispatcher_Vend_AdapterFailure_ReturnsProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	adapter := mocks.NewMockProviderAdapter(ctrl)

	ctx := context.Background()
	account := &domain.ProviderAccount{}
	req := ports.VendRequest{MerchantRef: "ORD-1"}
	adapter.EXPECT().Vend(ctx, account, req).Return(domain.NormalizedResponse{ResponseCode: apperror.CodeProviderFailure, ResponseMessage: "network timeout"})

	d := NewProviderDispatcher(map[string]ports.ProviderAdapter{"MTN": adapter}, time.Minute, 5, newTestLogger())
	resp := d.Vend(ctx, "MTN", account, req)
	assert.Equal(t, apperror.CodeProviderFailure, resp.ResponseCode)
}

func TestDispatcher_Vend_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	adapter := mocks.NewMockProviderAdapter(ctrl)

	ctx := context.Background()
	account := &domain.ProviderAccount{}
	req := ports.VendRequest{MerchantRef: "ORD-1"}
	adapter.EXPECT().Vend(ctx, account, req).Return(domain.NormalizedResponse{ResponseCode: apperror.CodeSuccess})

	d := NewProviderDispatcher(map[string]ports.ProviderAdapter{"MTN": adapter}, time.Minute, 5, newTestLogger())
	m := metrics.New(prometheus.NewRegistry())
	d.SetMetrics(m)

	d.Vend(ctx, "MTN", account, req)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProviderCallsTotal.WithLabelValues("MTN", apperror.CodeSuccess)))
}
