// Package client talks HTTP to the DataV backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) used by the
//     services layer: Request for JSON calls and Upload for multipart file
//     uploads with progress reporting.
//  2. A concrete implementation (see HTTPClient) that attaches the bearer
//     token of the current session, stamps every call with an X-Request-ID,
//     traces it through otelhttp, and normalises failures.
//
// # Error Handling
//
// Failures are *RequestError (Request) or *UploadError (Upload). Match the
// kind with errors.Is: ErrNetwork, ErrHTTP, ErrSessionExpired, ErrParse.
// A 401 on Request clears the session, invokes the SessionExpiredFunc given
// with WithSessionExpiredHandler, and fails with ErrSessionExpired. The
// caller owns what happens next, typically asking the user to log in again.
//
// No call is retried.
package client
