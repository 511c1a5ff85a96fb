package daemon_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"coinledger/internal/daemon"
	"coinledger/internal/daemon/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// respondWith makes the fake caller decode a canned JSON result.
func respondWith(caller *fake.RPCCaller, results map[string]string) {
	caller.CallContextStub = func(_ context.Context, result any, method string, _ ...any) error {
		raw, ok := results[method]
		if !ok {
			return errors.New("unexpected method " + method)
		}
		return json.Unmarshal([]byte(raw), result)
	}
}

var _ = Describe("Client", func() {
	var (
		caller *fake.RPCCaller
		client *daemon.Client
		ctx    context.Context
		cfg    daemon.Config
	)

	BeforeEach(func() {
		caller = new(fake.RPCCaller)
		ctx = context.Background()
		cfg = daemon.Config{
			AddressPrefix: "bitcoincash:",
			FallbackFee:   decimal.RequireFromString("0.0001"),
		}
	})

	JustBeforeEach(func() {
		client = daemon.NewClient(zap.NewNop().Sugar(), caller, cfg)
	})

	Describe("ListAddresses", func() {
		BeforeEach(func() {
			respondWith(caller, map[string]string{
				"listreceivedbyaddress": `[
					{"address":"bitcoincash:qa1","amount":0},
					{"address":"qa2","amount":1.5},
					{"address":"bitcoincash:qa1","amount":0}
				]`,
			})
		})

		It("should strip the prefix and drop duplicates", func() {
			addresses, err := client.ListAddresses(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(addresses).To(Equal([]string{"qa1", "qa2"}))

			_, _, method, args := caller.CallContextArgsForCall(0)
			Expect(method).To(Equal("listreceivedbyaddress"))
			Expect(args).To(Equal([]any{0, true}))
		})
	})

	Describe("CreateAddress", func() {
		BeforeEach(func() {
			respondWith(caller, map[string]string{"getnewaddress": `"bitcoincash:qnew"`})
		})

		It("should return the address without the prefix", func() {
			address, err := client.CreateAddress(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(address).To(Equal("qnew"))
		})
	})

	Describe("EstimateFee", func() {
		When("the daemon has an estimate", func() {
			BeforeEach(func() {
				respondWith(caller, map[string]string{"estimatesmartfee": `{"feerate":0.00002,"blocks":6}`})
			})

			It("should return it", func() {
				fee, err := client.EstimateFee(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(fee.String()).To(Equal("0.00002"))
			})
		})

		When("the daemon cannot estimate", func() {
			BeforeEach(func() {
				respondWith(caller, map[string]string{"estimatesmartfee": `{"errors":["Insufficient data or no feerate found"],"blocks":0}`})
			})

			It("should return the fallback fee", func() {
				fee, err := client.EstimateFee(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(fee.String()).To(Equal("0.0001"))
			})
		})
	})

	Describe("SendToAddress", func() {
		BeforeEach(func() {
			respondWith(caller, map[string]string{"sendtoaddress": `"abc123"`})
		})

		It("should pass the amount as a fixed-point number and the routing comment", func() {
			hash, err := client.SendToAddress(ctx, "qto", decimal.RequireFromString("1.5"), "rent", "qfrom@qto")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("abc123"))

			_, _, _, args := caller.CallContextArgsForCall(0)
			Expect(args).To(Equal([]any{"qto", json.Number("1.50000000"), "rent", "qfrom@qto"}))
		})
	})

	Describe("ListSinceBlock", func() {
		BeforeEach(func() {
			respondWith(caller, map[string]string{"listsinceblock": `{
				"transactions":[
					{"txid":"t1","address":"bitcoincash:qa1","category":"receive","amount":10,"confirmations":2,"blockheight":100},
					{"txid":"t2","address":"qa2","category":"send","amount":-1,"fee":-0.0001,"to":"qa2@qx","trusted":false}
				],
				"lastblock":"h"
			}`})
		})

		It("should decode the entries", func() {
			entries, err := client.ListSinceBlock(ctx, "hash-99")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Address).To(Equal("qa1"))
			Expect(*entries[0].Confirmations).To(Equal(int64(2)))
			Expect(entries[1].Fee.String()).To(Equal("-0.0001"))
			Expect(*entries[1].Trusted).To(BeFalse())

			_, _, _, args := caller.CallContextArgsForCall(0)
			Expect(args).To(Equal([]any{"hash-99"}))
		})
	})

	Describe("error mapping over the wire", func() {
		var (
			server *httptest.Server
			status int
			body   string
			seen   map[string]any
		)

		BeforeEach(func() {
			status = http.StatusOK
			seen = nil
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				raw, err := io.ReadAll(r.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(json.Unmarshal(raw, &seen)).To(Succeed())
				Expect(r.Header.Get("Authorization")).To(Equal("Basic dXNlcjpwYXNz"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = io.WriteString(w, body)
			}))
			DeferCleanup(server.Close)

			cfg.URL = server.URL
			cfg.User = "user"
			cfg.Password = "pass"
			cfg.Timeout = time.Second
		})

		JustBeforeEach(func() {
			rpcClient, err := daemon.Dial(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(rpcClient.Close)
			client = daemon.NewClient(zap.NewNop().Sugar(), rpcClient, cfg)
		})

		When("the call succeeds", func() {
			BeforeEach(func() {
				body = `{"jsonrpc":"2.0","id":1,"result":812345}`
			})

			It("should decode the result", func() {
				height, err := client.BlockCount(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(height).To(Equal(int64(812345)))
				Expect(seen["method"]).To(Equal("getblockcount"))
			})
		})

		When("the daemon rejects an address", func() {
			BeforeEach(func() {
				body = `{"jsonrpc":"2.0","id":1,"error":{"code":-5,"message":"Invalid address"}}`
			})

			It("should map it to a bad address error", func() {
				_, err := client.SendToAddress(ctx, "nope", decimal.NewFromInt(1), "", "a@nope")
				var derr *daemon.Error
				Expect(errors.As(err, &derr)).To(BeTrue())
				Expect(derr.Code).To(Equal(-5))
				Expect(derr.Kind).To(Equal(daemon.KindBadAddress))
			})
		})

		When("the daemon answers with a non-2xx status and a JSON body", func() {
			BeforeEach(func() {
				status = http.StatusInternalServerError
				body = `{"result":null,"error":{"code":-5,"message":"Invalid or non-wallet transaction id"},"id":1}`
			})

			It("should decode the body and classify by method", func() {
				_, err := client.Transaction(ctx, "deadbeef")
				Expect(daemon.IsKind(err, daemon.KindObjectNotFound)).To(BeTrue())
			})
		})

		When("a server error carries an application code", func() {
			BeforeEach(func() {
				body = `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"fee too small","data":{"application_code":17}}}`
			})

			It("should use the application code", func() {
				_, err := client.SendToAddress(ctx, "qto", decimal.NewFromInt(1), "", "a@qto")
				Expect(daemon.IsKind(err, daemon.KindFeeTooSmall)).To(BeTrue())
			})
		})

		When("the method is unknown", func() {
			BeforeEach(func() {
				body = `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`
			})

			It("should be a generic rpc failure", func() {
				_, err := client.Balance(ctx)
				Expect(daemon.IsKind(err, daemon.KindRPC)).To(BeTrue())
			})
		})
	})
})
