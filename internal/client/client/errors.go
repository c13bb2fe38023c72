package client

import (
	"encoding/json"
	"errors"
	"strings"
)

// Sentinels matched with errors.Is against a *RequestError or *UploadError.
var (
	ErrNetwork        = errors.New("network error")
	ErrHTTP           = errors.New("request failed")
	ErrSessionExpired = errors.New("session expired")
	ErrParse          = errors.New("malformed response")
)

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	// KindNetwork: the request never produced a response.
	KindNetwork ErrorKind = iota + 1
	// KindHTTP: a non-2xx response (other than 401 on Request).
	KindHTTP
	// KindSessionExpired: a 401 on Request; the session was cleared.
	KindSessionExpired
	// KindParse: a 2xx response whose body is not JSON.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindSessionExpired:
		return "session_expired"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindHTTP:
		return ErrHTTP
	case KindSessionExpired:
		return ErrSessionExpired
	case KindParse:
		return ErrParse
	default:
		return nil
	}
}

// Messages used when the server gives no detail.
const (
	msgNetwork        = "Network error"
	msgRequestFailed  = "Request failed"
	msgUploadFailed   = "Upload failed"
	msgSessionExpired = "Session expired"
	msgParse          = "Malformed response"
)

// RequestError is returned by Request. Error() is the user-facing message:
// the server's "detail" when it sent one.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// UploadError is returned by Upload.
type UploadError struct {
	RequestError
}

// AsRequestError extracts the RequestError carried by err, whether it came
// from Request or from Upload.
func AsRequestError(err error) (*RequestError, bool) {
	var ue *UploadError
	if errors.As(err, &ue) {
		return &ue.RequestError, true
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// errorDetail extracts the server's message from an error body such as
// {"detail": "bad input"} or a validation list
// {"detail": [{"msg": "field required"}, ...]}. It returns "" otherwise.
func errorDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if m := strings.TrimSpace(it.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
