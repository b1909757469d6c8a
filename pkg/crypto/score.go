package crypto

import (
	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
)

// Score は空白 (0x20) と ASCII 英字の個数を返します。
// 長さでは正規化しません。
func Score(b bytearray.Bytes) int {
	n := 0
	for _, c := range b.Slice() {
		if c == ' ' || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') {
			n++
		}
	}
	return n
}
