package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"coinledger/internal/http/handler/middleware"
	"coinledger/internal/http/payload"
	"coinledger/internal/repository"

	"go.uber.org/zap"
)

var (
	ListAddresses           = "GET /v1/addresses"
	GetAddress              = "GET /v1/addresses/{address}"
	GetAddressBalance       = "GET /v1/addresses/{address}/balance"
	CreateOwnerAddress      = "POST /v1/owners/{ownerId}/addresses"
	ListOwnerAddresses      = "GET /v1/owners/{ownerId}/addresses"
	GetOwnerAddress         = "GET /v1/owners/{ownerId}/addresses/{address}"
	GetOwnerAddressBalance  = "GET /v1/owners/{ownerId}/addresses/{address}/balance"
	DisableOwnerAddress     = "DELETE /v1/owners/{ownerId}/addresses/{address}"
	CreateOwnerTransaction  = "POST /v1/owners/{ownerId}/transactions"
	ListOwnerTransactions   = "GET /v1/owners/{ownerId}/transactions"
	ListTransactionRequests = "GET /v1/owners/{ownerId}/transaction-requests"
	ReconcileTransaction    = "POST /v1/transactions/reconcile"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	addresses        AddressService
	transactions     TransactionService
	pool             PoolTrigger
}

func NewWalletHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	addresses AddressService,
	transactions TransactionService,
	pool PoolTrigger,
) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		addresses:        addresses,
		transactions:     transactions,
		pool:             pool,
	}
}

func (h *WalletHandler) HandleListAddresses(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	filter := repository.AddressFilter{FreeOnly: r.URL.Query().Get("free") == "true"}
	addresses, err := h.addresses.List(r.Context(), filter)
	if err != nil {
		h.fail(w, "Could not list addresses", err, ListAddresses, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewAddressesResponse(addresses),
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetAddress(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, err := h.addresses.Find(r.Context(), ownerFrom(r), r.PathValue("address"))
	if err != nil {
		h.fail(w, "Could not get address", err, GetAddress, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewAddressResponse(address),
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetAddressBalance(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, err := h.addresses.Find(r.Context(), ownerFrom(r), r.PathValue("address"))
	if err != nil {
		h.fail(w, "Could not get balance", err, GetAddressBalance, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewBalanceResponse(address.Balance),
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleCreateOwnerAddress(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	ownerID := r.PathValue("ownerId")

	address, err := h.addresses.Allocate(r.Context(), ownerID)
	if err != nil {
		h.fail(w, "Could not create address", err, CreateOwnerAddress, requestId)
		return
	}

	h.pool.Trigger()

	h.logs.Infow("address allocated",
		"owner", ownerID,
		"address", address.Address,
		"handler", CreateOwnerAddress,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Address created",
		Data:    payload.NewAddressResponse(address),
	}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleListOwnerAddresses(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	ownerID := r.PathValue("ownerId")

	addresses, err := h.addresses.List(r.Context(), repository.AddressFilter{OwnerID: &ownerID})
	if err != nil {
		h.fail(w, "Could not list addresses", err, ListOwnerAddresses, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewAddressesResponse(addresses),
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleDisableOwnerAddress(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	ownerID := r.PathValue("ownerId")

	address, err := h.addresses.Disable(r.Context(), &ownerID, r.PathValue("address"))
	if err != nil {
		h.fail(w, "Could not disable address", err, DisableOwnerAddress, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Address disabled",
		Data:    payload.NewAddressResponse(address),
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleCreateOwnerTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	ownerID := r.PathValue("ownerId")

	var body payload.CreateTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.respond(w, Response{
			Message: "Could not create transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateOwnerTransaction,
			"request_id", requestId)
		return
	}

	request, err := h.transactions.Submit(r.Context(), body.ToPayment(ownerID))
	if err != nil {
		h.fail(w, "Could not create transaction", err, CreateOwnerTransaction, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Transaction submitted",
		Data:    payload.NewTransactionRequestResponse(request),
	}, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleListOwnerTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	ownerID := r.PathValue("ownerId")

	filter := repository.TransactionFilter{
		OwnerID: &ownerID,
		Address: r.URL.Query().Get("address"),
	}
	txs, err := h.transactions.ListTransactions(r.Context(), filter)
	if err != nil {
		h.fail(w, "Could not list transactions", err, ListOwnerTransactions, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewTransactionsResponse(txs),
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleListTransactionRequests(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	requests, err := h.transactions.ListRequests(r.Context(), r.PathValue("ownerId"))
	if err != nil {
		h.fail(w, "Could not list transaction requests", err, ListTransactionRequests, requestId)
		return
	}

	h.respond(w, Response{
		Data: payload.NewTransactionRequestsResponse(requests),
	}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleReconcileTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var body payload.ReconcileRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.respond(w, Response{
			Message: "Could not reconcile transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ReconcileTransaction,
			"request_id", requestId)
		return
	}

	outcome, err := h.transactions.Reconcile(r.Context(), body.ToEvent())
	if err != nil {
		h.fail(w, "Could not reconcile transaction", err, ReconcileTransaction, requestId)
		return
	}

	h.respond(w, Response{
		Message: "Transaction reconciled",
		Data:    map[string]string{"outcome": string(outcome)},
	}, http.StatusOK, requestId)
}

// ownerFrom returns the {ownerId} path value, nil on owner-agnostic routes.
func ownerFrom(r *http.Request) *string {
	ownerID := r.PathValue("ownerId")
	if ownerID == "" {
		return nil
	}
	return &ownerID
}

func (h *WalletHandler) fail(w http.ResponseWriter, message string, err error, handler string, requestId string) {
	code, detail, errCode := failure(err)
	h.respond(w, Response{
		Message: message,
		Error:   detail,
		Code:    errCode,
	}, code, requestId)

	if code >= http.StatusInternalServerError {
		h.logs.Errorw(message, "error", err, "handler", handler, "request_id", requestId)
		return
	}
	h.logs.Warnw(message, "error", err, "handler", handler, "request_id", requestId)
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
