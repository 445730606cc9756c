// Package transport serves the indexed facts over REST and exposes the gRPC health service.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nyks-indexer/internal/zkos"
)

// ServiceName is reported by the health endpoints.
const ServiceName = "nyks-indexer-api"

const (
	addressParam   = "t_address"
	maxRequestBody = 1 << 20
)

var errEmptyAddress = errors.New("t_address is required")

// Handler answers the read-only queries of the indexer.
type Handler struct {
	store   Store
	codec   Codec
	metrics Metrics
	logger  *zap.Logger
}

func NewHandler(store Store, codec Codec, metrics Metrics, logger *zap.Logger) (*Handler, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if codec == nil {
		return nil, errors.New("codec is required")
	}
	if metrics == nil {
		return nil, errors.New("api metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:   store,
		codec:   codec,
		metrics: metrics,
		logger:  logger,
	}, nil
}

type apiFunc func(r *http.Request, params map[string]string) (int, any)

type route struct {
	method  string
	pattern string
	name    string
	fn      apiFunc
}

func (h *Handler) routes() []route {
	return []route{
		{http.MethodGet, "/api/health", "health", h.health},
		{http.MethodPost, "/api/decode-transaction", "decode_transaction", h.decodeTransaction},
		{http.MethodGet, "/api/transactions/{t_address}", "transactions", h.transactions},
		{http.MethodGet, "/api/funding/{t_address}", "funding", h.funding},
		{http.MethodGet, "/api/exchange-withdrawal/{t_address}", "exchange_withdrawal", h.exchangeWithdrawal},
		{http.MethodGet, "/api/exchange-deposit/{t_address}", "exchange_deposit", h.exchangeDeposit},
		{http.MethodGet, "/api/btc-deposit/{t_address}", "btc_deposit", h.btcDeposit},
		{http.MethodGet, "/api/btc-withdrawal/{t_address}", "btc_withdrawal", h.btcWithdrawal},
		{http.MethodGet, "/api/qq-account/{t_address}", "qq_account", h.qqAccount},
		{http.MethodGet, "/api/gas/{t_address}", "gas", h.gas},
		{http.MethodGet, "/api/orders/{t_address}", "orders", h.orders},
		{http.MethodGet, "/api/address/{t_address}/all", "address_all", h.addressAll},
	}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	for _, rt := range h.routes() {
		if err := mux.HandlePath(rt.method, rt.pattern, h.wrap(rt.name, rt.fn)); err != nil {
			return fmt.Errorf("register %s: %w", rt.pattern, err)
		}
	}
	return nil
}

func (h *Handler) wrap(name string, fn apiFunc) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		started := time.Now()
		code, body := fn(r, params)
		h.metrics.Observe(name, code, started)
		h.writeJSON(w, code, body)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func (h *Handler) fail(r *http.Request, code int, message string, err error) (int, any) {
	h.logger.Error(message,
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	return code, errorResponse{Error: fmt.Sprintf("%s: %v", message, err)}
}

func address(params map[string]string) (string, error) {
	addr := strings.TrimSpace(params[addressParam])
	if addr == "" {
		return "", errEmptyAddress
	}
	return addr, nil
}

func (h *Handler) health(*http.Request, map[string]string) (int, any) {
	return http.StatusOK, healthResponse{Status: "healthy", Service: ServiceName}
}

func (h *Handler) decodeTransaction(r *http.Request, _ map[string]string) (int, any) {
	var req decodeRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err == nil {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)}
	}

	raw, err := zkos.ParseHex(req.TxByteCode)
	if err == nil {
		var tx zkos.Transaction
		tx, err = h.codec.Decode(raw)
		if err == nil {
			resp := decodeResponse{Success: true, TxType: tx.Variant().String(), Data: tx}
			if script, ok := tx.(*zkos.Script); ok {
				resp.Program = zkos.Disassemble(script.Program)
			}
			return http.StatusOK, resp
		}
	}
	h.logger.Debug("decode transaction failed", zap.Int("bytes", len(req.TxByteCode)), zap.Error(err))
	return http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("Failed to decode transaction: %v", err)}
}

func (h *Handler) transactions(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	count, err := h.store.TransactionCount(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch transaction count", err)
	}
	return http.StatusOK, transactionsResponse{Success: true, TAddress: addr, TransactionCount: count}
}

func (h *Handler) funding(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.FundsMovedByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch funds moved", err)
	}
	return http.StatusOK, fundsMovedResponse{Success: true, TAddress: addr, FundsMoved: fundsMovedData(records)}
}

func (h *Handler) exchangeWithdrawal(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.DarkBurnedByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch dark burned sats", err)
	}
	return http.StatusOK, darkBurnedResponse{Success: true, TAddress: addr, DarkBurnedSats: darkSatsData(records)}
}

func (h *Handler) exchangeDeposit(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.DarkMintedByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch dark minted sats", err)
	}
	return http.StatusOK, darkMintedResponse{Success: true, TAddress: addr, DarkMintedSats: darkSatsData(records)}
}

func (h *Handler) btcDeposit(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.LitMintedByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch lit minted sats", err)
	}
	return http.StatusOK, litMintedResponse{Success: true, TAddress: addr, LitMintedSats: litSatsData(records)}
}

func (h *Handler) btcWithdrawal(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.LitBurnedByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch lit burned sats", err)
	}
	return http.StatusOK, litBurnedResponse{Success: true, TAddress: addr, LitBurnedSats: litSatsData(records)}
}

func (h *Handler) qqAccount(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.AccountsByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch qq accounts", err)
	}
	return http.StatusOK, qAddressesResponse{Success: true, TAddress: addr, QAddresses: qAddressData(records)}
}

func (h *Handler) gas(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.GasUsedByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch gas used", err)
	}
	return http.StatusOK, gasUsedResponse{Success: true, TAddress: addr, GasUsed: gasUsedData(records)}
}

func (h *Handler) orders(r *http.Request, params map[string]string) (int, any) {
	addr, err := address(params)
	if err != nil {
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}
	records, err := h.store.OrderLogsByAddress(r.Context(), addr)
	if err != nil {
		return h.fail(r, http.StatusInternalServerError, "Failed to fetch orders", err)
	}
	return http.StatusOK, ordersResponse{Success: true, TAddress: addr, Orders: orderLogData(records)}
}
