package utmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bnema/logdata/internal/domain"
)

// Record type tags (ut_type).
const (
	TypeEmpty        int16 = 0
	TypeRunLevel     int16 = 1
	TypeBootTime     int16 = 2
	TypeNewTime      int16 = 3
	TypeOldTime      int16 = 4
	TypeInitProcess  int16 = 5
	TypeLoginProcess int16 = 6
	TypeUserProcess  int16 = 7
	TypeDeadProcess  int16 = 8
	TypeAccounting   int16 = 9
)

// Field widths and offsets of the glibc struct utmpx on Linux.
const (
	RecordSize = 384

	lineSize = 32
	idSize   = 4
	userSize = domain.UsernameWidth
	hostSize = 256

	offType    = 0
	offPID     = 4
	offLine    = 8
	offID      = offLine + lineSize
	offUser    = offID + idSize
	offHost    = offUser + userSize
	offExit    = offHost + hostSize
	offSession = offExit + 4
	offTVSec   = offSession + 4
	offTVUsec  = offTVSec + 4
	offAddrV6  = offTVUsec + 4
)

// Record is one raw log entry.
type Record struct {
	Type     int16
	PID      int32
	Line     string
	ID       string
	User     string
	Host     string
	ExitTerm int16
	ExitCode int16
	Session  int32
	Seconds  int32
	Micros   int32
	AddrV6   [4]int32
}

// ParseByteOrder maps a config value to a binary.ByteOrder.
func ParseByteOrder(raw string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedByteOrder, raw)
	}
}

// Decode parses one RecordSize-byte entry.
func Decode(buf []byte, order binary.ByteOrder) (Record, error) {
	if len(buf) != RecordSize {
		return Record{}, fmt.Errorf("decode record: got %d bytes, want %d", len(buf), RecordSize)
	}

	rec := Record{
		Type:     int16(order.Uint16(buf[offType:])),
		PID:      int32(order.Uint32(buf[offPID:])),
		Line:     trimField(buf[offLine : offLine+lineSize]),
		ID:       trimField(buf[offID : offID+idSize]),
		User:     trimField(buf[offUser : offUser+userSize]),
		Host:     trimField(buf[offHost : offHost+hostSize]),
		ExitTerm: int16(order.Uint16(buf[offExit:])),
		ExitCode: int16(order.Uint16(buf[offExit+2:])),
		Session:  int32(order.Uint32(buf[offSession:])),
		Seconds:  int32(order.Uint32(buf[offTVSec:])),
		Micros:   int32(order.Uint32(buf[offTVUsec:])),
	}
	for i := range rec.AddrV6 {
		rec.AddrV6[i] = int32(order.Uint32(buf[offAddrV6+4*i:]))
	}

	return rec, nil
}

// Encode writes rec in the on-disk layout. Text fields longer than their
// width are cut; a field that fills its width has no NUL terminator.
func Encode(rec Record, order binary.ByteOrder) []byte {
	buf := make([]byte, RecordSize)

	order.PutUint16(buf[offType:], uint16(rec.Type))
	order.PutUint32(buf[offPID:], uint32(rec.PID))
	copy(buf[offLine:offLine+lineSize], rec.Line)
	copy(buf[offID:offID+idSize], rec.ID)
	copy(buf[offUser:offUser+userSize], rec.User)
	copy(buf[offHost:offHost+hostSize], rec.Host)
	order.PutUint16(buf[offExit:], uint16(rec.ExitTerm))
	order.PutUint16(buf[offExit+2:], uint16(rec.ExitCode))
	order.PutUint32(buf[offSession:], uint32(rec.Session))
	order.PutUint32(buf[offTVSec:], uint32(rec.Seconds))
	order.PutUint32(buf[offTVUsec:], uint32(rec.Micros))
	for i, word := range rec.AddrV6 {
		order.PutUint32(buf[offAddrV6+4*i:], uint32(word))
	}

	return buf
}

// Classify maps a record type tag to a session event type.
func Classify(recordType int16) domain.EventType {
	switch recordType {
	case TypeUserProcess:
		return domain.EventSessionStart
	case TypeDeadProcess:
		return domain.EventSessionEnd
	default:
		return domain.EventOther
	}
}

// Event converts rec into the session event the accumulator consumes.
func (r Record) Event() domain.SessionEvent {
	return domain.SessionEvent{
		Username:  r.User,
		Type:      Classify(r.Type),
		Timestamp: int64(r.Seconds),
		Line:      r.Line,
		Host:      r.Host,
		PID:       r.PID,
	}
}

func trimField(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return string(field[:i])
	}

	return string(field)
}
