package transport

import (
	"context"
	"net/http"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/pkg/workerpool"
)

type fetchTask func(ctx context.Context) error

// addressAll runs every per-address read concurrently; the first failure cancels the rest.
func (h *Handler) addressAll(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}

	var (
		count      uint64
		funds      []model.FundsMoved
		darkBurned []model.DarkSats
		darkMinted []model.DarkSats
		litMinted  []model.LitSats
		litBurned  []model.LitSats
		accounts   []model.AddressMapping
		gas        []model.GasUsage
		orders     []model.OrderLog
	)
	tasks := []fetchTask{
		func(ctx context.Context) (err error) {
			count, err = h.store.TransactionCount(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			funds, err = h.store.FundsMovedByAddress(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			darkBurned, err = h.store.DarkBurnedByAddress(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			darkMinted, err = h.store.DarkMintedByAddress(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			litMinted, err = h.store.LitMintedByAddress(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			litBurned, err = h.store.LitBurnedByAddress(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			accounts, err = h.store.AccountsByAddress(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			gas, err = h.store.GasUsedByAddress(ctx, addr)
			return
		},
		func(ctx context.Context) (err error) {
			orders, err = h.store.OrderLogsByAddress(ctx, addr)
			return
		},
	}

	err = workerpool.Process(r.Context(), len(tasks), tasks, func(ctx context.Context, task fetchTask) error {
		return task(ctx)
	})
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch address data", err)
	}

	return http.StatusOK, addressAllResponse{
		Success:          true,
		TAddress:         addr,
		TransactionCount: count,
		FundsMoved:       fundsMovedData(funds),
		DarkBurnedSats:   darkSatsData(darkBurned),
		DarkMintedSats:   darkSatsData(darkMinted),
		LitMintedSats:    litSatsData(litMinted),
		LitBurnedSats:    litSatsData(litBurned),
		QAddresses:       qAddressData(accounts),
		GasUsed:          gasUsedData(gas),
		Orders:           orderLogData(orders),
	}
}
