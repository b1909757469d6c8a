package bytearray

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
)

// View は Buffer の一部を指す読み取り専用ビューです。
// 所有元・オフセット・長さ・世代番号を持ち、アクセスのたびに所有元と照合します。
// ゼロ値は空のビューです。
type View struct {
	owner *Buffer
	off   int
	n     int
	gen   uint64
}

// Len はバイト数を返します
func (v View) Len() int {
	return v.n
}

// Slice はコピーせずに内容を返します。
// 所有元がリサイズ済みの場合は ErrStaleView で panic します。
func (v View) Slice() []byte {
	if v.owner == nil {
		return nil
	}
	return v.owner.window(v.off, v.n, v.gen)
}

// Bytes は内容のコピーを返します
func (v View) Bytes() []byte {
	return bytes.Clone(v.Slice())
}

// Hex は小文字の16進文字列を返します
func (v View) Hex() string {
	return Hex(v)
}

// Base64 は base64 文字列を返します
func (v View) Base64() string {
	return Base64(v)
}

// Text は内容を UTF-8 文字列として返します
func (v View) Text() (string, error) {
	return Text(v)
}

// Decode は内容を enc の文字コードから UTF-8 に変換します
func (v View) Decode(enc encoding.Encoding) (string, error) {
	return Decode(v, enc)
}

// Histogram は各バイト値の出現回数を返します
func (v View) Histogram() [256]int {
	return Histogram(v)
}

// Equal は内容が o と等しいかを返します
func (v View) Equal(o Bytes) bool {
	return Equal(v, o)
}

// String は16進表現を返します
func (v View) String() string {
	return v.Hex()
}

// Xor は s と XOR した新しい Buffer を返します
func (v View) Xor(s Stream) *Buffer {
	return Xor(v, s)
}

// View はこのビュー内の [lo, hi) を指すビューを返します
func (v View) View(lo, hi int) View {
	v.checkRange(lo, hi)
	return View{owner: v.owner, off: v.off + lo, n: hi - lo, gen: v.gen}
}

func (v View) checkRange(lo, hi int) {
	// 所有元の世代も確認する
	v.Slice()
	if lo < 0 || hi < lo || hi > v.n {
		panic(fmt.Errorf("%w: [%d:%d] of %d bytes", ErrOutOfRange, lo, hi, v.n))
	}
}

// MutView は Buffer の一部を指す書き込み可能ビューです。
// ゼロ値は空のビューです。
type MutView struct {
	v View
}

// Len はバイト数を返します
func (m MutView) Len() int {
	return m.v.Len()
}

// Slice はコピーせずに内容を返します
func (m MutView) Slice() []byte {
	return m.v.Slice()
}

func (m MutView) mutSlice() []byte {
	return m.v.Slice()
}

// Bytes は内容のコピーを返します
func (m MutView) Bytes() []byte {
	return m.v.Bytes()
}

// Hex は小文字の16進文字列を返します
func (m MutView) Hex() string {
	return Hex(m)
}

// Base64 は base64 文字列を返します
func (m MutView) Base64() string {
	return Base64(m)
}

// Text は内容を UTF-8 文字列として返します
func (m MutView) Text() (string, error) {
	return Text(m)
}

// Decode は内容を enc の文字コードから UTF-8 に変換します
func (m MutView) Decode(enc encoding.Encoding) (string, error) {
	return Decode(m, enc)
}

// Histogram は各バイト値の出現回数を返します
func (m MutView) Histogram() [256]int {
	return Histogram(m)
}

// Equal は内容が o と等しいかを返します
func (m MutView) Equal(o Bytes) bool {
	return Equal(m, o)
}

// String は16進表現を返します
func (m MutView) String() string {
	return m.Hex()
}

// Xor は s と XOR した新しい Buffer を返します
func (m MutView) Xor(s Stream) *Buffer {
	return Xor(m, s)
}

// XorAssign は s との XOR をその場で適用します。
// 実行中は同じ範囲を他のビューから読み書きしてはいけません。
func (m MutView) XorAssign(s Stream) {
	XorAssign(m, s)
}

// View はこのビュー内の [lo, hi) を指す読み取り専用ビューを返します
func (m MutView) View(lo, hi int) View {
	return m.v.View(lo, hi)
}

// MutView はこのビュー内の [lo, hi) を指す書き込み可能ビューを返します
func (m MutView) MutView(lo, hi int) MutView {
	return MutView{m.v.View(lo, hi)}
}

// AsView は同じ範囲の読み取り専用ビューを返します
func (m MutView) AsView() View {
	return m.v
}
