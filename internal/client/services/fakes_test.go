package services

import (
	"context"
	"encoding/json"

	"github.com/vltrn/datav/internal/client/client"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	RequestRet json.RawMessage
	RequestErr error
	UploadRet  json.RawMessage
	UploadErr  error

	Requests    []client.Request
	UploadCalls int
	LastUpload  struct {
		Path string
		File client.UploadFile
	}
}

func (f *fakeClient) Request(ctx context.Context, req client.Request) (json.RawMessage, error) {
	f.Requests = append(f.Requests, req)
	return f.RequestRet, f.RequestErr
}

func (f *fakeClient) Upload(ctx context.Context, path string, file client.UploadFile, onProgress client.ProgressFunc) (json.RawMessage, error) {
	f.UploadCalls++
	f.LastUpload.Path = path
	f.LastUpload.File = file
	if onProgress != nil {
		onProgress(100)
	}
	return f.UploadRet, f.UploadErr
}

func (f *fakeClient) last() client.Request {
	if len(f.Requests) == 0 {
		return client.Request{}
	}
	return f.Requests[len(f.Requests)-1]
}

func (f *fakeClient) lastBody(v any) error {
	b, err := json.Marshal(f.last().Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// fakeSession implements SessionStore.
type fakeSession struct {
	EstablishErr error
	ClearErr     error
	RememberErr  error

	Token       string
	User        json.RawMessage
	Remember    bool
	Email       string
	ClearCalls  int
	ForgetCalls int
	ResetCalls  int
}

func (s *fakeSession) Establish(ctx context.Context, token string, user json.RawMessage, remember bool) error {
	if s.EstablishErr != nil {
		return s.EstablishErr
	}
	s.Token, s.User, s.Remember = token, user, remember
	return nil
}

func (s *fakeSession) ClearToken(ctx context.Context) error {
	s.ClearCalls++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Token, s.User = "", nil
	return nil
}

func (s *fakeSession) Reset(ctx context.Context) error {
	s.ResetCalls++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Token, s.User, s.Email = "", nil, ""
	return nil
}

func (s *fakeSession) RememberEmail(ctx context.Context, email string) error {
	if s.RememberErr != nil {
		return s.RememberErr
	}
	s.Email = email
	return nil
}

func (s *fakeSession) ForgetEmail(ctx context.Context) error {
	s.ForgetCalls++
	s.Email = ""
	return nil
}
