package utmp

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/logdata/internal/domain"
	"github.com/bnema/logdata/internal/ports"
	"github.com/rs/zerolog"
)

// DefaultPath is the system login history log.
const DefaultPath = "/var/log/wtmp"

// Reader decodes records from a session log one at a time, in file order.
type Reader struct {
	src     io.Reader
	closer  io.Closer
	order   binary.ByteOrder
	buf     []byte
	records int
	logger  zerolog.Logger
}

var _ ports.RecordSource = (*Reader)(nil)

func NewReader(src io.Reader, order binary.ByteOrder, logger zerolog.Logger) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}

	return &Reader{
		src:    bufio.NewReaderSize(src, 64*RecordSize),
		order:  order,
		buf:    make([]byte, RecordSize),
		logger: logger.With().Str("component", "utmp-reader").Logger(),
	}
}

// Open opens the log at path. The caller must Close the returned Reader.
func Open(path string, order binary.ByteOrder, logger zerolog.Logger) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session log %q: %w", path, err)
	}

	reader := NewReader(file, order, logger.With().Str("path", path).Logger())
	reader.closer = file

	return reader, nil
}

// Next returns the next record as a session event, or io.EOF at the end of the
// log. A trailing partial record also ends the log.
func (r *Reader) Next(ctx context.Context) (domain.SessionEvent, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionEvent{}, err
	}

	n, err := io.ReadFull(r.src, r.buf)
	switch {
	case errors.Is(err, io.EOF):
		return domain.SessionEvent{}, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		r.logger.Warn().
			Int("record", r.records).
			Int("bytes", n).
			Msg("Ignoring truncated trailing record")
		return domain.SessionEvent{}, io.EOF
	case err != nil:
		return domain.SessionEvent{}, fmt.Errorf("read record %d: %w", r.records, err)
	}

	rec, err := Decode(r.buf, r.order)
	if err != nil {
		return domain.SessionEvent{}, err
	}
	r.records++

	event := rec.Event()
	r.logger.Trace().
		Int16("ut_type", rec.Type).
		Str("user", rec.User).
		Str("line", rec.Line).
		Int32("tv_sec", rec.Seconds).
		Stringer("event", event.Type).
		Msg("Decoded record")

	return event, nil
}

// Records reports how many complete records have been decoded.
func (r *Reader) Records() int {
	return r.records
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}
