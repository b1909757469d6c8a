package bytearray

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode は hex / base64 文字列の変換に失敗した場合のエラー
	ErrDecode = errors.New("bytearray: decode failed")

	// ErrEncoding はバイト列を指定の文字コードとして解釈できない場合のエラー
	ErrEncoding = errors.New("bytearray: invalid text encoding")

	// ErrLengthMismatch は有限長同士の XOR で長さが一致しない場合のエラー
	ErrLengthMismatch = errors.New("bytearray: length mismatch")

	// ErrEmptyKey は空のキーから Cyclic ストリームを作ろうとした場合のエラー
	ErrEmptyKey = errors.New("bytearray: empty key")

	// ErrStaleView は所有元のバッファがリサイズされた後にビューを使った場合のエラー
	ErrStaleView = errors.New("bytearray: stale view")

	// ErrOutOfRange はビューの範囲が所有元の長さを超える場合のエラー
	ErrOutOfRange = errors.New("bytearray: range out of bounds")

	// ErrInvalidStream はゼロ値など、コンストラクタを通していない Stream で XOR した場合のエラー
	ErrInvalidStream = errors.New("bytearray: invalid stream")

	errUndecodable = errors.New("undecodable byte sequence")
)

// LengthMismatchError は XOR の左辺と右辺の長さを保持します。
// XOR はこの値で panic します。
type LengthMismatchError struct {
	Want int // 左辺の長さ
	Got  int // ストリームが生成した (または宣言した) 長さ
}

// Error はエラーメッセージを返します
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: want %d bytes, got %d", ErrLengthMismatch, e.Want, e.Got)
}

// Unwrap は ErrLengthMismatch を返します
func (e *LengthMismatchError) Unwrap() error {
	return ErrLengthMismatch
}

// EncodingError は文字列変換に失敗した位置を保持します
type EncodingError struct {
	Offset int   // 最初に不正と判定されたバイト位置
	Err    error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v at offset %d: %v", ErrEncoding, e.Offset, e.Err)
}

// Unwrap は ErrEncoding と元のエラーを返します
func (e *EncodingError) Unwrap() []error {
	return []error{ErrEncoding, e.Err}
}
