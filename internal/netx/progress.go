// Package netx holds transport helpers for the upload path: a reader that
// reports how much of a request body was consumed, and a multipart encoder.
package netx

import (
	"io"
	"sync"
)

// ProgressFunc receives the integer percentage of a body handed to the transport.
type ProgressFunc func(percent int)

// ProgressReader wraps a body of known size and calls fn with
// floor(read*100/total) each time that value grows. Calls are therefore
// strictly increasing, and 100 is reported only after the last byte was read.
type ProgressReader struct {
	r     io.Reader
	total int64
	fn    ProgressFunc

	mu   sync.Mutex
	read int64
	last int
}

func NewProgressReader(r io.Reader, total int64, fn ProgressFunc) *ProgressReader {
	return &ProgressReader{r: r, total: total, fn: fn, last: -1}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.advance(int64(n))
	}
	return n, err
}

func (p *ProgressReader) advance(n int64) {
	if p.fn == nil || p.total <= 0 {
		return
	}

	p.mu.Lock()
	p.read += n
	pct := int(p.read * 100 / p.total)
	if pct > 100 {
		pct = 100
	}
	if pct <= p.last {
		p.mu.Unlock()
		return
	}
	p.last = pct
	p.mu.Unlock()

	p.fn(pct)
}
