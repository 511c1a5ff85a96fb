package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"coinledger/internal/daemon"
	"coinledger/internal/http/handler"
	"coinledger/internal/http/handler/fake"
	"coinledger/internal/http/payload"
	"coinledger/internal/ledger"
	"coinledger/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func decodeEnvelope(w *httptest.ResponseRecorder) envelope {
	var resp envelope
	Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	return resp
}

var _ = Describe("WalletHandler", func() {
	var (
		wh               *handler.WalletHandler
		fakeAddresses    *fake.AddressService
		fakeTransactions *fake.TransactionService
		fakePool         *fake.PoolTrigger
		fakeValidator    *fake.RequestValidator
		w                *httptest.ResponseRecorder
		req              *http.Request
		owner            string
		fakeErr          error
	)

	BeforeEach(func() {
		owner = "owner1"
		fakeErr = errors.New("fake-error")
		fakeAddresses = new(fake.AddressService)
		fakeTransactions = new(fake.TransactionService)
		fakePool = new(fake.PoolTrigger)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		wh = handler.NewWalletHandler(zap.NewNop().Sugar(), fakeValidator, fakeAddresses, fakeTransactions, fakePool)
	})

	Describe("HandleCreateOwnerAddress", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/v1/owners/owner1/addresses", nil)
			req.SetPathValue("ownerId", owner)
		})

		JustBeforeEach(func() {
			wh.HandleCreateOwnerAddress(w, req)
		})

		When("an address is allocated", func() {
			BeforeEach(func() {
				fakeAddresses.AllocateReturns(repository.Address{
					ID:        "id-1",
					OwnerID:   &owner,
					Address:   "A",
					IsEnabled: true,
				}, nil)
			})

			It("should return it with zero balances and wake the pool", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				_, ownerID := fakeAddresses.AllocateArgsForCall(0)
				Expect(ownerID).To(Equal(owner))
				Expect(fakePool.TriggerCallCount()).To(Equal(1))

				var address payload.AddressResponse
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &address)).To(Succeed())
				Expect(address.Address).To(Equal("A"))
				Expect(address.Balance.Available).To(Equal("0.00000000"))
				Expect(address.Balance.Locked).To(Equal("0.00000000"))
			})
		})

		When("the daemon is unreachable", func() {
			BeforeEach(func() {
				fakeAddresses.AllocateReturns(repository.Address{}, fmt.Errorf("create daemon address: %w",
					&daemon.Error{Method: "getnewaddress", Kind: daemon.KindRPC, Message: "connection refused"}))
			})

			It("should return 502 without waking the pool", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(fakePool.TriggerCallCount()).To(BeZero())
				Expect(decodeEnvelope(w).Error).NotTo(ContainSubstring("connection refused"))
			})
		})
	})

	Describe("HandleGetAddressBalance", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/v1/addresses/A/balance", nil)
			req.SetPathValue("address", "A")
		})

		JustBeforeEach(func() {
			wh.HandleGetAddressBalance(w, req)
		})

		When("the address exists", func() {
			BeforeEach(func() {
				fakeAddresses.FindReturns(repository.Address{
					Address: "A",
					Balance: repository.Balance{
						Available: decimal.RequireFromString("1.5"),
						Locked:    decimal.RequireFromString("0.00000001"),
					},
				}, nil)
			})

			It("should render both balances with eight digits", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, ownerID, address := fakeAddresses.FindArgsForCall(0)
				Expect(ownerID).To(BeNil())
				Expect(address).To(Equal("A"))

				var balance payload.BalanceResponse
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &balance)).To(Succeed())
				Expect(balance.Available).To(Equal("1.50000000"))
				Expect(balance.Locked).To(Equal("0.00000001"))
			})
		})

		When("the address is unknown", func() {
			BeforeEach(func() {
				fakeAddresses.FindReturns(repository.Address{}, fmt.Errorf("address A: %w", ledger.ErrNotFound))
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetAddress on an owner route", func() {
		It("should scope the lookup to the owner", func() {
			req = httptest.NewRequest(http.MethodGet, "/v1/owners/owner1/addresses/A", nil)
			req.SetPathValue("ownerId", owner)
			req.SetPathValue("address", "A")

			wh.HandleGetAddress(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, ownerID, _ := fakeAddresses.FindArgsForCall(0)
			Expect(*ownerID).To(Equal(owner))
		})
	})

	Describe("HandleDisableOwnerAddress", func() {
		It("should disable within the owner's scope", func() {
			req = httptest.NewRequest(http.MethodDelete, "/v1/owners/owner1/addresses/A", nil)
			req.SetPathValue("ownerId", owner)
			req.SetPathValue("address", "A")

			wh.HandleDisableOwnerAddress(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, ownerID, address := fakeAddresses.DisableArgsForCall(0)
			Expect(*ownerID).To(Equal(owner))
			Expect(address).To(Equal("A"))
		})
	})

	Describe("HandleCreateOwnerTransaction", func() {
		var body string

		BeforeEach(func() {
			body = `{"ownerTransactionId":"order-1","from":"A","to":"B","amount":"1.25","comment":"invoice"}`
			fakeTransactions.SubmitReturns(repository.TransactionRequest{
				ID:              "req-1",
				OwnerID:         owner,
				From:            "A",
				To:              "B",
				Amount:          decimal.RequireFromString("1.25"),
				Fee:             decimal.RequireFromString("0.0002"),
				Status:          repository.RequestSubmitted,
				TransactionHash: "T1",
			}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/v1/owners/owner1/transactions", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("ownerId", owner)
			wh.HandleCreateOwnerTransaction(w, req)
		})

		When("the payment is accepted", func() {
			It("should submit it for the path owner", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))

				_, payment := fakeTransactions.SubmitArgsForCall(0)
				Expect(payment.OwnerID).To(Equal(owner))
				Expect(payment.OwnerTransactionID).To(Equal("order-1"))
				Expect(payment.Amount.Equal(decimal.RequireFromString("1.25"))).To(BeTrue())

				var request payload.TransactionRequestResponse
				Expect(json.Unmarshal(decodeEnvelope(w).Data, &request)).To(Succeed())
				Expect(request.TransactionHash).To(Equal("T1"))
				Expect(request.Fee).To(Equal("0.00020000"))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				body = `{"ownerTransactionId":"order-1","from":"A","to":"B","amount":"-1"}`
			})

			It("should return 400 without submitting", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeTransactions.SubmitCallCount()).To(BeZero())
			})
		})

		When("the payload has unknown fields", func() {
			BeforeEach(func() {
				body = `{"ownerTransactionId":"order-1","from":"A","to":"B","amount":"1","fee":"1"}`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeTransactions.SubmitCallCount()).To(BeZero())
			})
		})

		When("the sender lacks funds", func() {
			BeforeEach(func() {
				fakeTransactions.SubmitReturns(repository.TransactionRequest{}, fmt.Errorf("sender A needs 2: %w", ledger.ErrInsufficientFunds))
			})

			It("should return 409 with the wallet balance code", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(decodeEnvelope(w).Code).To(Equal(ledger.InsufficientFundsCode))
			})
		})

		When("the daemon rejects the address", func() {
			BeforeEach(func() {
				fakeTransactions.SubmitReturns(repository.TransactionRequest{}, &daemon.Error{
					Method:  "sendtoaddress",
					Code:    -5,
					Message: "Invalid address",
					Kind:    daemon.KindBadAddress,
				})
			})

			It("should return 400 with the daemon kind", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				resp := decodeEnvelope(w)
				Expect(resp.Code).To(Equal(string(daemon.KindBadAddress)))
				Expect(resp.Error).To(Equal("Invalid address"))
			})
		})

		When("an unexpected error occurs", func() {
			BeforeEach(func() {
				fakeTransactions.SubmitReturns(repository.TransactionRequest{}, fakeErr)
			})

			It("should return 500 and hide the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleListOwnerTransactions", func() {
		It("should filter by owner and optional address", func() {
			fakeTransactions.ListTransactionsReturns([]repository.Transaction{
				{ID: "tx-1", Amount: decimal.RequireFromString("-0.5"), TransactionHash: "T1", Address: "A"},
			}, nil)
			req = httptest.NewRequest(http.MethodGet, "/v1/owners/owner1/transactions?address=A", nil)
			req.SetPathValue("ownerId", owner)

			wh.HandleListOwnerTransactions(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, filter := fakeTransactions.ListTransactionsArgsForCall(0)
			Expect(*filter.OwnerID).To(Equal(owner))
			Expect(filter.Address).To(Equal("A"))

			var txs []payload.TransactionResponse
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &txs)).To(Succeed())
			Expect(txs).To(HaveLen(1))
			Expect(txs[0].Amount).To(Equal("-0.50000000"))
		})
	})

	Describe("HandleReconcileTransaction", func() {
		It("should feed the event to the ledger", func() {
			fakeTransactions.ReconcileReturns(ledger.OutcomeCreated, nil)
			req = httptest.NewRequest(http.MethodPost, "/v1/transactions/reconcile", strings.NewReader(
				`{"txid":"T1","category":"receive","address":"A","amount":"10","confirmations":0}`))

			wh.HandleReconcileTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, event := fakeTransactions.ReconcileArgsForCall(0)
			Expect(event.TxID).To(Equal("T1"))
			Expect(event.Amount.Equal(decimal.NewFromInt(10))).To(BeTrue())
			Expect(string(decodeEnvelope(w).Data)).To(ContainSubstring("created"))
		})

		It("should reject unknown categories", func() {
			req = httptest.NewRequest(http.MethodPost, "/v1/transactions/reconcile", strings.NewReader(
				`{"txid":"T1","category":"generate","address":"A","amount":"10"}`))

			wh.HandleReconcileTransaction(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeTransactions.ReconcileCallCount()).To(BeZero())
		})
	})
})
