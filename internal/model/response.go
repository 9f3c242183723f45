package model

// Envelope codes. Anything other than CodeOK is a failure.
const (
	CodeOK           = 200
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeNotFound     = 404
	CodeServerError  = 500
)

// Response is the envelope every operation answers with
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data"`
}

// ListParams carries the keyword filter and 1-based pagination of list calls.
// Page or Size <= 0 means "no pagination".
type ListParams struct {
	Page    int    `query:"page" json:"page"`
	Size    int    `query:"size" json:"size"`
	Keyword string `query:"keyword" json:"keyword"`
}

// PageResult is the data of every list call. Total is the filtered count before pagination.
type PageResult[T any] struct {
	List  []T `json:"list"`
	Total int `json:"total"`
}

// Option is an id/name pair for pick-lists
type Option struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
}
