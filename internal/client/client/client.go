package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vltrn/datav/internal/netx"
)

// Client is the contract the services layer depends on.
type Client interface {
	Request(ctx context.Context, req Request) (json.RawMessage, error)
	Upload(ctx context.Context, path string, file UploadFile, onProgress ProgressFunc) (json.RawMessage, error)
}

// Request describes one JSON call. Path is relative to the base URL and
// must start with "/". Body may be nil, raw JSON bytes, or any value that
// encodes to JSON. Header entries override the defaults.
type Request struct {
	Path   string
	Method string
	Header http.Header
	Body   any
}

// UploadFile is the single file sent by Upload under the form field "file".
type UploadFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ProgressFunc receives upload progress as an integer percent. It runs on
// the transport goroutine and must not block.
type ProgressFunc = netx.ProgressFunc

// TokenStore is the part of the session store the client needs.
type TokenStore interface {
	CurrentToken(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// SessionExpiredFunc is called after a 401 cleared the session.
type SessionExpiredFunc func(ctx context.Context)
