package entity

import (
	"bytes"
	"errors"
	"strconv"
	"time"
)

// EpochMillis is an instant stored as Unix milliseconds. Decoding also
// accepts an RFC 3339 string and null.
type EpochMillis struct {
	time.Time
}

// NewEpochMillis truncates t to millisecond precision in UTC.
func NewEpochMillis(t time.Time) EpochMillis {
	return EpochMillis{Time: t.UTC().Truncate(time.Millisecond)}
}

func (m EpochMillis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, m.UnixMilli(), 10), nil
}

func (m *EpochMillis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		return errors.New("empty timestamp")
	case bytes.Equal(data, []byte("null")):
		*m = EpochMillis{}
		return nil
	case data[0] == '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return errors.New("parsing timestamp error: " + err.Error())
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return errors.New("parsing timestamp error: " + err.Error())
		}
		*m = NewEpochMillis(t)
		return nil
	}
	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errors.New("parsing timestamp error: " + err.Error())
	}
	*m = EpochMillis{Time: time.UnixMilli(int64(ms)).UTC()}
	return nil
}
