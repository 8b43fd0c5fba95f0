package flagkit

import "github.com/pkg/errors"

type EntryFlag uint8

const (
	EntryCompressed EntryFlag = 1 << iota
)

// encodeEntry lays out a value as flag + payload. The payload is
// compressed only when that makes it smaller.
func encodeEntry(value []byte, compressor Compressor) ([]byte, error) {
	var flag EntryFlag
	payload := value
	if compressor != nil && len(value) > 0 {
		c, err := compressor(value)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compress value")
		}
		if len(c) < len(value) {
			payload = c
			flag |= EntryCompressed
		}
	}
	buf := make([]byte, 0, 1+len(payload))
	buf = append(buf, byte(flag))
	return append(buf, payload...), nil
}

func decodeEntry(data []byte, decompressor DeCompressor) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty entry data")
	}
	flag := EntryFlag(data[0])
	payload := data[1:]
	if flag&EntryCompressed == 0 {
		return payload, nil
	}
	if decompressor == nil {
		return nil, errors.New("value is compressed but decompressor is nil")
	}
	value, err := decompressor(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress value")
	}
	return value, nil
}
