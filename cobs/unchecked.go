package cobs

// EncodeUnchecked writes the COBS encoding of src into dst and returns the
// number of bytes written.  It produces byte-for-byte the same output as
// Encode, but performs no capacity checking: you must ensure that dst holds
// at least MaxEncodedLen(len(src)) bytes.  Passing a smaller dst is a caller
// bug and panics partway through the write.  Use Encode instead whenever the
// buffer sizing is not already guaranteed.
func EncodeUnchecked(src []byte, dst []byte) int {
	if len(src) == 0 {
		return 0
	}

	// Push bytes into the output as they are scanned, skipping over each
	// group's code byte and backfilling it once the group's extent is known.
	codePos := 0
	pos := 1
	code := byte(1)
	for _, b := range src {
		if b != 0 {
			dst[pos] = b
			pos++
			code++
			if code == groupCapCode {
				dst[codePos] = code
				codePos = pos
				pos++
				code = 1
			}
		} else {
			dst[codePos] = code
			codePos = pos
			pos++
			code = 1
		}
	}

	// Close the open group.  If the input ended exactly on a group boundary
	// this writes the empty terminal group's code into the already reserved
	// slot.
	dst[codePos] = code
	return pos
}

// DecodeUnchecked writes the COBS decoding of src into dst and returns the
// number of bytes written.  It produces byte-for-byte the same output as
// Decode on well-formed input, but performs no validation: you must ensure
// that src is a well-formed encoding (in particular, that it was produced by
// this package's encoder or an equivalent one) and that dst holds at least
// MaxDecodedLen(len(src)) bytes.  Violating either precondition is a caller
// bug that panics or silently produces garbage output; never call it on
// untrusted input.
func DecodeUnchecked(src []byte, dst []byte) int {
	pos := 0
	i := 0
	for i < len(src) {
		code := src[i]
		run := int(code) - 1
		copy(dst[pos:pos+run], src[i+1:i+1+run])
		pos += run
		i += run + 1
		if code != groupCapCode && i < len(src) {
			dst[pos] = 0
			pos++
		}
	}
	return pos
}
