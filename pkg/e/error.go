package e

// 业务错误码定义：JSON API 错误响应中的 code 字段
const (
	SUCCESS        = "SUCCESS"
	ERROR          = "INTERNAL_ERROR"
	INVALID_PARAMS = "INVALID_PARAMS"
	INVALID_JSON   = "INVALID_JSON"
	MISSING_FIELD  = "MISSING_FIELD"

	AUTH_REQUIRED  = "AUTH_REQUIRED"
	AUTH_FAILED    = "AUTH_FAILED"
	WRONG_PASSWORD = "WRONG_PASSWORD"

	PRODUCT_NOT_FOUND       = "PRODUCT_NOT_FOUND"
	PRODUCT_RETRIEVAL_ERROR = "PRODUCT_RETRIEVAL_ERROR"
	PRODUCT_SAVE_ERROR      = "PRODUCT_SAVE_ERROR"

	ORDER_NOT_FOUND       = "ORDER_NOT_FOUND"
	ORDER_RETRIEVAL_ERROR = "ORDER_RETRIEVAL_ERROR"
	ORDER_CREATION_ERROR  = "ORDER_CREATION_ERROR"
	ORDER_UPDATE_ERROR    = "ORDER_UPDATE_ERROR"
	ORDER_DELETE_ERROR    = "ORDER_DELETE_ERROR"
	ORDER_ACCESS_DENIED   = "ORDER_ACCESS_DENIED"

	FEEDBACK_NOT_FOUND       = "FEEDBACK_NOT_FOUND"
	FEEDBACK_RETRIEVAL_ERROR = "FEEDBACK_RETRIEVAL_ERROR"
	FEEDBACK_CREATION_ERROR  = "FEEDBACK_CREATION_ERROR"
	FEEDBACK_DELETE_ERROR    = "FEEDBACK_DELETE_ERROR"

	CLIENT_RETRIEVAL_ERROR = "CLIENT_RETRIEVAL_ERROR"
	CLIENT_SAVE_ERROR      = "CLIENT_SAVE_ERROR"
	CLIENT_DELETE_ERROR    = "CLIENT_DELETE_ERROR"

	CART_ERROR     = "CART_ERROR"
	CHECKOUT_ERROR = "CHECKOUT_ERROR"
	SESSION_ERROR  = "SESSION_ERROR"
	RATE_LIMITED   = "RATE_LIMITED"
)

var MsgFlags = map[string]string{
	SUCCESS:        "success",
	ERROR:          "internal error",
	INVALID_PARAMS: "invalid request parameters",
	INVALID_JSON:   "invalid JSON format",
	MISSING_FIELD:  "missing required field",

	AUTH_REQUIRED:  "admin authorization required",
	AUTH_FAILED:    "admin authorization failed",
	WRONG_PASSWORD: "wrong password",

	PRODUCT_NOT_FOUND:       "product not found",
	PRODUCT_RETRIEVAL_ERROR: "error retrieving products",
	PRODUCT_SAVE_ERROR:      "error saving product",

	ORDER_NOT_FOUND:       "order not found",
	ORDER_RETRIEVAL_ERROR: "error retrieving orders",
	ORDER_CREATION_ERROR:  "error creating order",
	ORDER_UPDATE_ERROR:    "error updating order",
	ORDER_DELETE_ERROR:    "error deleting order",
	ORDER_ACCESS_DENIED:   "no access to this order",

	FEEDBACK_NOT_FOUND:       "feedback not found",
	FEEDBACK_RETRIEVAL_ERROR: "error retrieving feedback",
	FEEDBACK_CREATION_ERROR:  "error creating feedback",
	FEEDBACK_DELETE_ERROR:    "error deleting feedback",

	CLIENT_RETRIEVAL_ERROR: "error retrieving clients",
	CLIENT_SAVE_ERROR:      "error saving client",
	CLIENT_DELETE_ERROR:    "error deleting client",

	CART_ERROR:     "cart operation failed",
	CHECKOUT_ERROR: "checkout failed",
	SESSION_ERROR:  "session storage failed",
	RATE_LIMITED:   "too many requests",
}

func GetMsg(code string) string {
	msg, ok := MsgFlags[code]
	if ok {
		return msg
	}
	return MsgFlags[ERROR]
}
