package daemon

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

type Kind string

const (
	KindObjectNotFound    Kind = "OBJECT_NOT_FOUND"
	KindBadAddress        Kind = "BAD_ADDRESS"
	KindWrongAmount       Kind = "WRONG_AMOUNT"
	KindFeeTooSmall       Kind = "SMALL_FEE"
	KindInsufficientFunds Kind = "INSUFFICIENT_FUNDS"
	KindInvalidRequest    Kind = "INVALID_REQUEST"
	KindConflict          Kind = "CONFLICT"
	KindRPC               Kind = "RPC_ERROR"
)

const (
	codeMethodNotFound = -32601
	codeInvalidRequest = -32600
	codeServerError    = -32000

	codeWalletError       = -4
	codeInvalidAddress    = -5
	codeInsufficientFunds = -6
	codeTypeError         = -3
	codeVerifyRejected    = -26
)

// application codes carried in the data member of -32000 errors
var applicationKinds = map[int]Kind{
	4:  KindObjectNotFound,
	7:  KindBadAddress,
	9:  KindWrongAmount,
	17: KindFeeTooSmall,
}

// Error is a structured daemon failure.
type Error struct {
	Method  string
	Code    int
	Message string
	Data    any
	Kind    Kind
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("daemon %s: %s (code %d)", e.Method, e.Message, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a daemon error of the given kind.
func IsKind(err error, kind Kind) bool {
	var derr *Error
	return errors.As(err, &derr) && derr.Kind == kind
}

type wireError struct {
	Error *struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	} `json:"error"`
}

func mapError(method string, err error) error {
	derr := &Error{Method: method, Message: err.Error(), Kind: KindRPC, Err: err}

	var rpcErr rpc.Error
	var httpErr rpc.HTTPError
	switch {
	case errors.As(err, &rpcErr):
		derr.Code = rpcErr.ErrorCode()
		derr.Message = rpcErr.Error()
		var dataErr rpc.DataError
		if errors.As(err, &dataErr) {
			derr.Data = dataErr.ErrorData()
		}
	case errors.As(err, &httpErr):
		// bitcoind reports RPC failures with a non-2xx status and a JSON body
		var body wireError
		if jsonErr := json.Unmarshal(httpErr.Body, &body); jsonErr != nil || body.Error == nil {
			derr.Code = httpErr.StatusCode
			return derr
		}
		derr.Code = body.Error.Code
		derr.Message = body.Error.Message
		if len(body.Error.Data) > 0 {
			var data any
			if json.Unmarshal(body.Error.Data, &data) == nil {
				derr.Data = data
			}
		}
	default:
		return derr
	}

	derr.Kind = classify(method, derr.Code, derr.Data)
	return derr
}

func classify(method string, code int, data any) Kind {
	switch code {
	case codeMethodNotFound:
		return KindRPC
	case codeInvalidRequest:
		return KindInvalidRequest
	case codeServerError:
		if kind, ok := applicationKinds[applicationCode(data)]; ok {
			return kind
		}
		return KindConflict
	case codeInvalidAddress:
		if method == "gettransaction" {
			return KindObjectNotFound
		}
		return KindBadAddress
	case codeTypeError:
		return KindWrongAmount
	case codeVerifyRejected:
		return KindFeeTooSmall
	case codeInsufficientFunds:
		return KindInsufficientFunds
	case codeWalletError:
		return KindConflict
	}
	return KindRPC
}

func applicationCode(data any) int {
	fields, ok := data.(map[string]any)
	if !ok {
		return 0
	}
	switch code := fields["application_code"].(type) {
	case float64:
		return int(code)
	case json.Number:
		n, _ := code.Int64()
		return int(n)
	}
	return 0
}
