package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vas-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProviderRepo implements ports.ProviderRepository.
type ProviderRepo struct {
	pool Pool
}

// NewProviderRepo creates a new ProviderRepo.
func NewProviderRepo(pool Pool) *ProviderRepo {
	return &ProviderRepo{pool: pool}
}

// GetAccountByProviderCode fetches the operational account and parent
// provider record for a provider code (e.g. "MTN", "PAYVANTAGE"), used by
// C5 dispatch to look up credentials before calling C4's adapter.
func (r *ProviderRepo) GetAccountByProviderCode(ctx context.Context, providerCode string) (*domain.ProviderAccount, *domain.Provider, error) {
	query := `SELECT
		p.id, p.name, p.provider_code, p.is_active, p.created_at, p.updated_at,
		a.id, a.provider_id, a.account_name, a.available_balance, a.balance_at_provider,
		a.vending_sim, a.config, a.created_at, a.updated_at
		FROM providers p
		JOIN provider_accounts a ON a.provider_id = p.id
		WHERE p.provider_code = $1 AND p.is_active = TRUE`

	var provider domain.Provider
	var account domain.ProviderAccount
	var configRaw []byte

	err := r.pool.QueryRow(ctx, query, providerCode).Scan(
		&provider.ID, &provider.Name, &provider.ProviderCode, &provider.IsActive, &provider.CreatedAt, &provider.UpdatedAt,
		&account.ID, &account.ProviderID, &account.AccountName, &account.AvailableBalance, &account.BalanceAtProvider,
		&account.VendingSIM, &configRaw, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get provider account: %w", err)
	}

	if len(configRaw) > 0 {
		if err := json.Unmarshal(configRaw, &account.Config); err != nil {
			return nil, nil, fmt.Errorf("decode provider account config: %w", err)
		}
	}

	return &account, &provider, nil
}

// UpdateAccountBalance updates the provider account's float balance fields
// after a GetBalance poll or a successful vend.
func (r *ProviderRepo) UpdateAccountBalance(ctx context.Context, accountID uuid.UUID, availableBalance, balanceAtProvider string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE provider_accounts SET available_balance = $1, balance_at_provider = $2, updated_at = NOW() WHERE id = $3`,
		availableBalance, balanceAtProvider, accountID,
	)
	if err != nil {
		return fmt.Errorf("update provider account balance: %w", err)
	}
	return nil
}
