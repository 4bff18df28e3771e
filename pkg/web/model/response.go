package model

// ErrorCode 标识响应状态，成功为 OK，失败标识失败原因
type ErrorCode string

const (
	CodeOK ErrorCode = "OK"

	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrorCodeRenameFailed   ErrorCode = "RENAME_FAILED"
	ErrorCodeHistoryFailed  ErrorCode = "HISTORY_FAILED"
)

// Response 统一响应信封
type Response struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
}
