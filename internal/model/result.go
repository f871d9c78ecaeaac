package model

// Result is the envelope every relay operation resolves to: {ok, data} on
// success, {ok, error} on a recovered failure.
type Result struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Success wraps data in a positive envelope. A nil data yields the bare
// {"ok":true} form used by telegram_alert.
func Success(data interface{}) Result {
	return Result{OK: true, Data: data}
}

// Failure builds a negative envelope carrying a stable error message.
func Failure(msg string) Result {
	return Result{OK: false, Error: msg}
}
