package pngenc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// ErrMalformedStream reports an encoded stream the splicer cannot parse.
var ErrMalformedStream = errors.New("pngenc: malformed PNG stream")

// pngSignatureLen is the length of the fixed 8-byte PNG signature.
const pngSignatureLen = 8

// appendChunk appends one chunk in wire format: 4-byte big-endian data
// length, 4-byte type, data, CRC-32 over type and data.
func appendChunk(dst []byte, typ string, data []byte) []byte {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], typ)
	dst = append(dst, hdr[:]...)
	dst = append(dst, data...)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	return append(dst, sum[:]...)
}

// appendInt32 appends v in big-endian order.
func appendInt32(dst []byte, v int32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return append(dst, b[:]...)
}

// splice inserts pre-encoded chunks immediately after the IHDR chunk,
// where ancillary metadata must appear (before the image data).
func splice(stream, chunks []byte) ([]byte, error) {
	if len(stream) < pngSignatureLen+12 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedStream, len(stream))
	}
	ihdrLen := binary.BigEndian.Uint32(stream[pngSignatureLen:])
	at := pngSignatureLen + 12 + int(ihdrLen)
	if at > len(stream) {
		return nil, fmt.Errorf("%w: header chunk overruns stream", ErrMalformedStream)
	}

	out := make([]byte, 0, len(stream)+len(chunks))
	out = append(out, stream[:at]...)
	out = append(out, chunks...)
	return append(out, stream[at:]...), nil
}
