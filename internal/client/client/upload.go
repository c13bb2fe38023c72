package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vltrn/datav/internal/common"
	"github.com/vltrn/datav/internal/netx"
)

// UploadFieldName is the multipart form field carrying the file.
const UploadFieldName = "file"

// Upload posts file as multipart/form-data to path. When onProgress is not
// nil it is called with the integer percent of the body handed to the
// transport, growing strictly, reaching 100 only if the whole body was sent.
//
// Upload is independent of Request: a 401 here is reported like any other
// non-2xx status and does not clear the session.
func (c *HTTPClient) Upload(ctx context.Context, path string, file UploadFile, onProgress ProgressFunc) (json.RawMessage, error) {
	log := c.logger.With("method", http.MethodPost, "path", path, "file", file.Name)

	payload, contentType, err := netx.MultipartFile(UploadFieldName, file.Name, file.ContentType, file.Content)
	if err != nil {
		return nil, err
	}

	var body io.Reader = bytes.NewReader(payload)
	if onProgress != nil {
		body = netx.NewProgressReader(body, int64(len(payload)), onProgress)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	httpReq.ContentLength = int64(len(payload))
	httpReq.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(payload)), nil
	}

	httpReq.Header.Set(common.ContentTypeHeaderName, contentType)
	httpReq.Header.Set(common.AcceptHeaderName, common.JSONContentType)
	httpReq.Header.Set(common.RequestIDHeaderName, c.newRequestID())
	if err := c.authorize(ctx, httpReq.Header); err != nil {
		return nil, err
	}

	log.Debug(ctx, "upload started", "bytes", len(payload))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		uerr := &UploadError{RequestError{Kind: KindNetwork, Message: msgNetwork, Err: err}}
		log.Error(ctx, "upload error", "kind", uerr.Kind, "error", err)
		return nil, uerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		uerr := &UploadError{RequestError{Kind: KindNetwork, StatusCode: resp.StatusCode, Message: msgNetwork, Err: err}}
		log.Error(ctx, "upload error", "kind", uerr.Kind, "status", resp.StatusCode, "error", err)
		return nil, uerr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorDetail(data)
		if msg == "" {
			msg = msgUploadFailed
		}
		uerr := &UploadError{RequestError{Kind: KindHTTP, StatusCode: resp.StatusCode, Message: msg}}
		log.Error(ctx, "upload error", "kind", uerr.Kind, "status", resp.StatusCode, "detail", msg)
		return nil, uerr
	}

	out, rerr := decodeJSON(data, resp.StatusCode)
	if rerr != nil {
		log.Error(ctx, "upload error", "kind", rerr.Kind, "status", resp.StatusCode)
		return nil, &UploadError{*rerr}
	}

	log.Debug(ctx, "upload finished", "status", resp.StatusCode)
	return out, nil
}
