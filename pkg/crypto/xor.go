package crypto

import (
	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
)

// SingleByteXOR は data の各バイトを key で XOR した新しいバッファを返します。
func SingleByteXOR(data bytearray.Bytes, key byte) *bytearray.Buffer {
	return bytearray.Xor(data, bytearray.Constant(key))
}

// RepeatingKeyXOR は data を key の繰り返しで XOR した新しいバッファを返します。
// 暗号化と復号は同じ操作です。key が空の場合は bytearray.ErrEmptyKey を返します。
func RepeatingKeyXOR(data bytearray.Bytes, key []byte) (*bytearray.Buffer, error) {
	s, err := bytearray.Cyclic(key)
	if err != nil {
		return nil, err
	}
	return bytearray.Xor(data, s), nil
}
