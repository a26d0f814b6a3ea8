package common

// WipeByteArray overwrites the contents of buf with zeros. It is used to
// clear passwords and transaction PINs from memory once they have been
// handed to the transport layer. Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
