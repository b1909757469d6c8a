package crypto

import (
	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
)

// RollingKeyStream は key から始まり、1バイトごとに step を加算していく
// 無限キーストリームを返します。step が 0 なら Constant(key) と同じ列になります。
func RollingKeyStream(key, step byte) bytearray.Stream {
	return bytearray.Custom(func(yield func(byte) bool) {
		for k := key; ; k += step {
			if !yield(k) {
				return
			}
		}
	}, bytearray.Infinite)
}

// MTKeyStream は seed で初期化した MT19937 の出力を
// リトルエンディアンのバイト列として流す無限キーストリームを返します。
// XOR のたびに seed から生成し直すので、同じストリームで2回 XOR すると元に戻ります。
func MTKeyStream(seed uint32) bytearray.Stream {
	return bytearray.Custom(func(yield func(byte) bool) {
		r := NewMT19937(seed)
		for {
			v := r.Uint32()
			for i := 0; i < 4; i++ {
				if !yield(byte(v >> (8 * i))) {
					return
				}
			}
		}
	}, bytearray.Infinite)
}
