package cobs

import (
	"bytes"
	"errors"
)

// maxGroup is the largest literal run that a single code byte can introduce.
// A run of exactly this length is marked with groupCapCode instead of a
// length, since the length values 1..255 must also leave room to say "a zero
// byte followed this run".
const maxGroup = 254
const groupCapCode = 0xff

var (
	// CapacityExceeded is the error that is returned when an output buffer is
	// too small to hold the result of an encode or decode.
	CapacityExceeded = errors.New("Output capacity exceeded")

	// InvalidCode is the error that is returned when a decoder input contains
	// a zero byte.  A zero byte can never appear in a COBS-encoded stream;
	// that is precisely the property that encoding establishes.
	InvalidCode = errors.New("Invalid code byte")

	// TruncatedGroup is the error that is returned when a group's declared
	// literal run extends past the end of the decoder input.
	TruncatedGroup = errors.New("Truncated group")
)

// MaxEncodedLen returns the number of bytes that encoding an input of length
// n could produce, at worst.  The worst case is an input with no zero bytes
// at all, which costs one code byte per 254 bytes of payload, plus the
// leading code byte, plus one byte for the empty terminal group appended when
// the input ends exactly on a group boundary.
func MaxEncodedLen(n int) int {
	return n + (n+maxGroup-1)/maxGroup + 1
}

// MaxDecodedLen returns an upper bound on the number of bytes that decoding
// an input of length n could produce.  Decoding never grows its input, so the
// bound is simply n; the exact size is only known once decoding has run.
func MaxDecodedLen(n int) int {
	return n
}

// zeroRun looks for a zero byte within the first maxRun bytes of data.  If we
// find one, we return its index within data.  If not, we return the length of
// the subset of data that we looked in.  (That is, the minimum of maxRun and
// the actual length of data.)
func zeroRun(data []byte, maxRun int) int {
	if len(data) < maxRun {
		maxRun = len(data)
	} else {
		data = data[:maxRun]
	}
	result := bytes.IndexByte(data, 0)
	if result == -1 {
		return maxRun
	}
	return result
}

// Encode writes the COBS encoding of src into dst and returns the number of
// bytes written.  The written prefix of dst contains no zero bytes.  Encode
// never writes outside of dst: the capacity of dst is checked as each group
// is produced, and encoding a worst-case src needs MaxEncodedLen(len(src))
// bytes.  If dst fills up before encoding completes, Encode returns
// CapacityExceeded and the partially written output must be discarded.
func Encode(src []byte, dst []byte) (int, error) {
	pos := 0
	for len(src) > 0 {
		run := zeroRun(src, maxGroup)
		if pos+run+1 > len(dst) {
			return 0, CapacityExceeded
		}
		if run == maxGroup {
			dst[pos] = groupCapCode
		} else {
			dst[pos] = byte(run) + 1
		}
		copy(dst[pos+1:], src[:run])
		pos += run + 1
		if run == maxGroup {
			src = src[run:]
			if len(src) > 0 {
				continue
			}
		} else if run < len(src) {
			// The run ended on a zero byte; consume it without copying it.
			src = src[run+1:]
			if len(src) > 0 {
				continue
			}
		} else {
			// Input exhausted mid-group; the group just written is final.
			return pos, nil
		}

		// The input ended exactly on a group boundary, either with a trailing
		// zero or with a full 254-byte run.  Append an empty terminal group
		// so that the decoder can tell the difference between "input ended
		// here" and "input ended one byte earlier".
		if pos == len(dst) {
			return 0, CapacityExceeded
		}
		dst[pos] = 1
		return pos + 1, nil
	}
	return pos, nil
}

// Decode writes the COBS decoding of src into dst and returns the number of
// bytes written, which is never more than len(src).  Decode validates src as
// it goes: a zero byte anywhere in src fails with InvalidCode, and a group
// whose declared literal run extends past the end of src fails with
// TruncatedGroup.  Decode never writes outside of dst; if dst fills up before
// decoding completes, it returns CapacityExceeded.  On any error the
// partially written output must be discarded.
func Decode(src []byte, dst []byte) (int, error) {
	pos := 0
	for len(src) > 0 {
		code := src[0]
		if code == 0 {
			return 0, InvalidCode
		}
		run := int(code) - 1
		if run > len(src)-1 {
			return 0, TruncatedGroup
		}
		group := src[1 : run+1]
		if bytes.IndexByte(group, 0) != -1 {
			return 0, InvalidCode
		}
		if pos+run > len(dst) {
			return 0, CapacityExceeded
		}
		copy(dst[pos:], group)
		pos += run
		src = src[run+1:]
		if code == groupCapCode || len(src) == 0 {
			// A full group removed no zero byte, and a terminal group's
			// removed zero (if any) is accounted for by the empty group that
			// follows it.
			continue
		}
		if pos == len(dst) {
			return 0, CapacityExceeded
		}
		dst[pos] = 0
		pos++
	}
	return pos, nil
}

// EncodeBytes encodes src into a freshly allocated buffer and returns the
// encoded bytes.  It is a convenience wrapper around EncodeUnchecked; the
// buffer it allocates is sized with MaxEncodedLen, so encoding cannot fail.
func EncodeBytes(src []byte) []byte {
	dst := make([]byte, MaxEncodedLen(len(src)))
	return dst[:EncodeUnchecked(src, dst)]
}

// DecodeBytes decodes src into a freshly allocated buffer and returns the
// decoded bytes.  It is a convenience wrapper around Decode and reports the
// same errors.
func DecodeBytes(src []byte) ([]byte, error) {
	dst := make([]byte, MaxDecodedLen(len(src)))
	n, err := Decode(src, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
