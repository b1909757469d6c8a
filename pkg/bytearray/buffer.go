// Package bytearray はバイト列の所有バッファとその借用ビュー、
// および XOR の右辺となるバイトストリームを提供します。
//
// 主な型:
//   - Buffer: バイト列を排他的に所有する可変長バッファ
//   - View: Buffer の一部を指す読み取り専用ビュー
//   - MutView: Buffer の一部を指す書き込み可能ビュー
//   - Stream: Borrowed / Constant / Cyclic / Custom のバイトストリーム
//
// 3つの型はどれも Bytes を実装し、hex / base64 への変換、UTF-8 文字列への変換、
// Stream との XOR を同じ実装で共有します。
package bytearray

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/encoding"
)

// Buffer はバイト列を排他的に所有するバッファです。
// ビューは Buffer の世代番号を記録し、Resize / Append 後に使われると panic します。
type Buffer struct {
	data []byte
	gen  uint64
}

// New は空の Buffer を作成します
func New() *Buffer {
	return &Buffer{data: []byte{}}
}

// FromBytes は p のコピーを所有する Buffer を作成します
func FromBytes(p []byte) *Buffer {
	data := make([]byte, len(p))
	copy(data, p)
	return &Buffer{data: data}
}

// FromString は s のバイト列を所有する Buffer を作成します
func FromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// FromHex は16進文字列をデコードして Buffer を作成します
func FromHex(s string) (*Buffer, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: hex: %w", ErrDecode, err)
	}
	return &Buffer{data: data}, nil
}

// FromBase64 は標準 base64 (パディングあり) の文字列をデコードして Buffer を作成します
func FromBase64(s string) (*Buffer, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %w", ErrDecode, err)
	}
	return &Buffer{data: data}, nil
}

// Len はバイト数を返します
func (b *Buffer) Len() int {
	return len(b.data)
}

// Slice はコピーせずに内容を返します
func (b *Buffer) Slice() []byte {
	return b.data[:len(b.data):len(b.data)]
}

func (b *Buffer) mutSlice() []byte {
	return b.Slice()
}

// Bytes は内容のコピーを返します
func (b *Buffer) Bytes() []byte {
	return bytes.Clone(b.data)
}

// Hex は小文字の16進文字列を返します
func (b *Buffer) Hex() string {
	return Hex(b)
}

// Base64 は base64 文字列を返します
func (b *Buffer) Base64() string {
	return Base64(b)
}

// Text は内容を UTF-8 文字列として返します
func (b *Buffer) Text() (string, error) {
	return Text(b)
}

// Decode は内容を enc の文字コードから UTF-8 に変換します
func (b *Buffer) Decode(enc encoding.Encoding) (string, error) {
	return Decode(b, enc)
}

// Histogram は各バイト値の出現回数を返します
func (b *Buffer) Histogram() [256]int {
	return Histogram(b)
}

// Equal は内容が o と等しいかを返します
func (b *Buffer) Equal(o Bytes) bool {
	return Equal(b, o)
}

// String は16進表現を返します
func (b *Buffer) String() string {
	return b.Hex()
}

// Xor は s と XOR した新しい Buffer を返します
func (b *Buffer) Xor(s Stream) *Buffer {
	return Xor(b, s)
}

// XorAssign は s との XOR をその場で適用します
func (b *Buffer) XorAssign(s Stream) {
	XorAssign(b, s)
}

// View は [lo, hi) の範囲を指す読み取り専用ビューを返します
func (b *Buffer) View(lo, hi int) View {
	b.checkRange(lo, hi)
	return View{owner: b, off: lo, n: hi - lo, gen: b.gen}
}

// MutView は [lo, hi) の範囲を指す書き込み可能ビューを返します
func (b *Buffer) MutView(lo, hi int) MutView {
	return MutView{b.View(lo, hi)}
}

// Resize は長さを n に変更します。伸ばした部分はゼロで埋めます。
// 既存のビューはすべて無効になります。
func (b *Buffer) Resize(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrOutOfRange, n))
	}
	if n == len(b.data) {
		return
	}
	if n < len(b.data) {
		clear(b.data[n:])
		b.data = b.data[:n]
	} else {
		b.data = append(b.data, make([]byte, n-len(b.data))...)
	}
	b.gen++
}

// Append は p を末尾に追加します。既存のビューはすべて無効になります。
func (b *Buffer) Append(p ...byte) {
	if len(p) == 0 {
		return
	}
	b.data = append(b.data, p...)
	b.gen++
}

func (b *Buffer) checkRange(lo, hi int) {
	if lo < 0 || hi < lo || hi > len(b.data) {
		panic(fmt.Errorf("%w: [%d:%d] of %d bytes", ErrOutOfRange, lo, hi, len(b.data)))
	}
}

// window はビューの記録を現在の状態と照合してから範囲を返します
func (b *Buffer) window(off, n int, gen uint64) []byte {
	if gen != b.gen {
		panic(fmt.Errorf("%w: view generation %d, buffer generation %d", ErrStaleView, gen, b.gen))
	}
	if off+n > len(b.data) {
		panic(fmt.Errorf("%w: [%d:%d] of %d bytes", ErrOutOfRange, off, off+n, len(b.data)))
	}
	return b.data[off : off+n : off+n]
}
