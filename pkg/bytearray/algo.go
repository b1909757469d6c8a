package bytearray

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Bytes は読み取り専用のバイト範囲を表します。
// Buffer、View、MutView がこれを実装します。
type Bytes interface {
	Len() int
	// Slice はコピーせずに内容を返します。呼び出し側は書き換えてはいけません。
	Slice() []byte
}

// MutableBytes は書き込み可能なバイト範囲を表します。
// Buffer と MutView がこれを実装します。
type MutableBytes interface {
	Bytes
	mutSlice() []byte
}

// Hex は小文字の16進文字列を返します
func Hex(b Bytes) string {
	return hex.EncodeToString(b.Slice())
}

// Base64 は標準アルファベット (パディングあり) の base64 文字列を返します
func Base64(b Bytes) string {
	return base64.StdEncoding.EncodeToString(b.Slice())
}

// Text は内容を UTF-8 として解釈した文字列を返します。
// 不正な UTF-8 を含む場合は *EncodingError を返します。
func Text(b Bytes) (string, error) {
	out, n, err := transform.Bytes(encoding.UTF8Validator, b.Slice())
	if err != nil {
		return "", &EncodingError{Offset: n, Err: err}
	}
	return string(out), nil
}

// Decode は内容を enc の文字コードとして UTF-8 に変換します (Shift-JIS など)。
// デコーダが置換文字 U+FFFD を出力した場合も不正なバイト列として *EncodingError を返します。
// U+FFFD を符号化できる文字コード (UTF-16 など) には Text を使ってください。
func Decode(b Bytes, enc encoding.Encoding) (string, error) {
	src := b.Slice()
	out, n, err := transform.Bytes(enc.NewDecoder(), src)
	if err != nil {
		return "", &EncodingError{Offset: n, Err: err}
	}
	if k := bytes.IndexRune(out, utf8.RuneError); k >= 0 {
		// 置換文字の手前までを出力し終えた時点の入力位置が不正なバイトの位置
		_, off, _ := enc.NewDecoder().Transform(make([]byte, k), src, true)
		return "", &EncodingError{Offset: off, Err: errUndecodable}
	}
	return string(out), nil
}

// Histogram は各バイト値の出現回数を返します
func Histogram(b Bytes) [256]int {
	var h [256]int
	for _, c := range b.Slice() {
		h[c]++
	}
	return h
}

// Equal は2つのバイト範囲の内容が等しいかを返します
func Equal(a, b Bytes) bool {
	return bytes.Equal(a.Slice(), b.Slice())
}

// Xor は b と s を先頭から1バイトずつ XOR した新しい Buffer を返します。
// 出力の長さは常に b.Len() です。
// s が有限で長さが異なる場合は *LengthMismatchError で panic します。
func Xor(b Bytes, s Stream) *Buffer {
	src := b.Slice()
	dst := make([]byte, len(src))
	s.xorInto(dst, src)
	return &Buffer{data: dst}
}

// XorAssign は Xor と同じ演算の結果を b 自身に書き戻します。
// 実行中は b の記憶領域に他から触れてはいけません。
func XorAssign(b MutableBytes, s Stream) {
	p := b.mutSlice()
	s.xorInto(p, p)
}
