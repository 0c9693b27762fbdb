package storage

import "io"

// ProgressFunc receives the running byte count as a reader is consumed.
type ProgressFunc func(transferred, total int64)

type progressReader struct {
	r           io.Reader
	total       int64
	transferred int64
	fn          ProgressFunc
}

// NewProgressReader wraps r so every read reports cumulative progress.
func NewProgressReader(r io.Reader, total int64, fn ProgressFunc) io.Reader {
	return &progressReader{r: r, total: total, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.transferred += int64(n)
		if p.fn != nil {
			p.fn(p.transferred, p.total)
		}
	}
	return n, err
}
