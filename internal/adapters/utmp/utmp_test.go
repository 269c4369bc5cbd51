package utmp

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/logdata/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeKeepsLayout(t *testing.T) {
	t.Parallel()

	rec := Record{
		Type:     TypeUserProcess,
		PID:      4242,
		Line:     "pts/3",
		ID:       "ts/3",
		User:     "alice",
		Host:     "10.0.0.7",
		ExitTerm: 1,
		ExitCode: 2,
		Session:  17,
		Seconds:  1_700_000_000,
		Micros:   123_456,
		AddrV6:   [4]int32{10, 0, 0, 7},
	}

	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		buf := Encode(rec, order)
		require.Len(t, buf, RecordSize)

		got, err := Decode(buf, order)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	}
}

func TestEncodePlacesFieldsAtGlibcOffsets(t *testing.T) {
	t.Parallel()

	buf := Encode(Record{Type: TypeDeadProcess, User: "bob", Seconds: 0x01020304}, binary.LittleEndian)

	assert.Equal(t, byte(TypeDeadProcess), buf[0])
	assert.Equal(t, "bob", string(buf[44:47]))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf[340:344])
}

func TestDecodeFullWidthUserHasNoTerminator(t *testing.T) {
	t.Parallel()

	full := strings.Repeat("u", domain.UsernameWidth)
	rec, err := Decode(Encode(Record{User: full + "overflow"}, binary.LittleEndian), binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, full, rec.User)
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	t.Parallel()

	_, err := Decode(make([]byte, RecordSize-1), binary.LittleEndian)
	assert.ErrorContains(t, err, "want 384")
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		recordType int16
		want       domain.EventType
	}{
		{name: "user process starts a session", recordType: TypeUserProcess, want: domain.EventSessionStart},
		{name: "dead process ends a session", recordType: TypeDeadProcess, want: domain.EventSessionEnd},
		{name: "boot time", recordType: TypeBootTime, want: domain.EventOther},
		{name: "run level", recordType: TypeRunLevel, want: domain.EventOther},
		{name: "login process", recordType: TypeLoginProcess, want: domain.EventOther},
		{name: "unknown tag", recordType: 99, want: domain.EventOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.recordType))
		})
	}
}

func TestParseByteOrder(t *testing.T) {
	t.Parallel()

	order, err := ParseByteOrder("")
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, order)

	order, err = ParseByteOrder("BIG")
	require.NoError(t, err)
	assert.Equal(t, binary.BigEndian, order)

	_, err = ParseByteOrder("middle")
	assert.ErrorIs(t, err, domain.ErrUnsupportedByteOrder)
}

func TestReaderYieldsEventsInOrderThenEOF(t *testing.T) {
	t.Parallel()

	var log bytes.Buffer
	require.NoError(t, Write(&log, binary.LittleEndian,
		Record{Type: TypeBootTime, User: "reboot", Seconds: 10},
		Record{Type: TypeUserProcess, User: "alice", Line: "tty1", Seconds: 100},
		Record{Type: TypeDeadProcess, User: "alice", Line: "tty1", Seconds: 160},
	))

	reader := NewReader(&log, binary.LittleEndian, zerolog.Nop())
	ctx := context.Background()

	var events []domain.SessionEvent
	for {
		event, err := reader.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		events = append(events, event)
	}

	require.Len(t, events, 3)
	assert.Equal(t, domain.EventOther, events[0].Type)
	assert.Equal(t, domain.SessionEvent{Username: "alice", Type: domain.EventSessionStart, Timestamp: 100, Line: "tty1"}, events[1])
	assert.Equal(t, domain.EventSessionEnd, events[2].Type)
	assert.Equal(t, 3, reader.Records())
}

func TestReaderTreatsTrailingPartialRecordAsEnd(t *testing.T) {
	t.Parallel()

	var log bytes.Buffer
	require.NoError(t, Write(&log, binary.LittleEndian, Record{Type: TypeUserProcess, User: "alice", Seconds: 1}))
	log.Write(make([]byte, RecordSize/2))

	var logged bytes.Buffer
	reader := NewReader(&log, binary.LittleEndian, zerolog.New(&logged))

	_, err := reader.Next(context.Background())
	require.NoError(t, err)

	_, err = reader.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, logged.String(), "Ignoring truncated trailing record")
}

func TestReaderWrapsReadFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("i/o error")
	reader := NewReader(io.MultiReader(bytes.NewReader(make([]byte, 10)), errReader{err: boom}), binary.LittleEndian, zerolog.Nop())

	_, err := reader.Next(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "read record 0")
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing"), binary.LittleEndian, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open session log")
}

func TestWriteFileThenOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wtmp")
	require.NoError(t, WriteFile(path, binary.BigEndian, Record{Type: TypeUserProcess, User: "carol", Seconds: 42}))

	reader, err := Open(path, binary.BigEndian, zerolog.Nop())
	require.NoError(t, err)
	defer reader.Close()

	event, err := reader.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "carol", event.Username)
	assert.Equal(t, int64(42), event.Timestamp)

	_, err = reader.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}
