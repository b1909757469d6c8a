package bytearray

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"iter"
)

// Kind はストリームの種類です
type Kind int

const (
	// KindInvalid はコンストラクタを通していないストリーム (ゼロ値)
	KindInvalid Kind = iota
	// KindConstant は同じ1バイトを無限に流すストリーム
	KindConstant
	// KindBorrowed は既存のバイト範囲をそのまま流す有限ストリーム
	KindBorrowed
	// KindCyclic はキーを無限に繰り返すストリーム
	KindCyclic
	// KindCustom は呼び出し側が用意したシーケンス
	KindCustom
)

// String は種類名を返します
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindConstant:
		return "constant"
	case KindBorrowed:
		return "borrowed"
	case KindCyclic:
		return "cyclic"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

// Infinite は Stream.Len が無限長のときに返す値です
const Infinite = -1

// Stream は XOR の右辺になるバイト列の生成元です。
// 有限 (長さが既知) か無限のどちらかで、XOR 1回につき先頭から消費されます。
// ゼロ値は無効で、XOR に使うと ErrInvalidStream で panic します。
type Stream struct {
	kind Kind
	src  Bytes
	b    byte
	key  []byte
	seq  iter.Seq[byte]
	n    int
}

// Borrowed は src の内容を流す有限ストリームを返します。長さは src.Len() です。
// XOR が終わるまで src を変更してはいけません。
func Borrowed(src Bytes) Stream {
	return Stream{kind: KindBorrowed, src: src, n: src.Len()}
}

// Constant は b を無限に繰り返すストリームを返します (単一バイト XOR)
func Constant(b byte) Stream {
	return Stream{kind: KindConstant, b: b, n: Infinite}
}

// Cyclic は key を無限に繰り返すストリームを返します (繰り返しキー XOR)。
// key が空の場合は無効なストリームと ErrEmptyKey を返します。key はコピーされます。
func Cyclic(key []byte) (Stream, error) {
	if len(key) == 0 {
		return Stream{}, ErrEmptyKey
	}
	return Stream{kind: KindCyclic, key: bytes.Clone(key), n: Infinite}, nil
}

// MustCyclic は Cyclic と同じですが、空のキーでは panic します
func MustCyclic(key []byte) Stream {
	s, err := Cyclic(key)
	if err != nil {
		panic(err)
	}
	return s
}

// Custom は任意のシーケンスをストリームにします。
// n が 0 以上なら長さ n の有限ストリーム、Infinite (負数) なら無限ストリームとして扱います。
// 有限ストリームが n バイトより少なく終わった場合、XOR は長さ不一致で panic します。
func Custom(seq iter.Seq[byte], n int) Stream {
	if n < 0 {
		n = Infinite
	}
	return Stream{kind: KindCustom, seq: seq, n: n}
}

// Kind はストリームの種類を返します
func (s Stream) Kind() Kind {
	return s.kind
}

// Finite は長さが決まっているストリームかどうかを返します
func (s Stream) Finite() bool {
	return s.kind == KindBorrowed || (s.kind == KindCustom && s.n >= 0)
}

// Len は有限ストリームの長さを返します。無限ストリームでは Infinite を返します。
func (s Stream) Len() int {
	if !s.Finite() {
		return Infinite
	}
	return s.n
}

// Take はストリームの先頭 n バイトを返します。有限ストリームでは長さで打ち切ります。
func (s Stream) Take(n int) []byte {
	if s.Finite() && s.n < n {
		n = s.n
	}
	switch s.kind {
	case KindBorrowed:
		return bytes.Clone(s.src.Slice()[:n])
	case KindCustom:
		s.n = n
	}
	out := make([]byte, n)
	s.xorInto(out, out)
	return out
}

// xorInto は dst[i] = src[i] ^ (ストリームの i 番目) を計算します。
// dst と src は同じ長さで、完全に一致するか重ならないかのどちらかです。
func (s Stream) xorInto(dst, src []byte) {
	if s.kind == KindInvalid {
		panic(fmt.Errorf("%w: kind %v", ErrInvalidStream, s.kind))
	}
	if s.Finite() && s.n != len(src) {
		panic(&LengthMismatchError{Want: len(src), Got: s.n})
	}

	switch s.kind {
	case KindBorrowed:
		y := s.src.Slice()
		if len(y) != len(src) {
			// ストリーム作成後に元のバッファが変わった
			panic(&LengthMismatchError{Want: len(src), Got: len(y)})
		}
		if len(src) > 0 && &dst[0] == &src[0] {
			// 右辺が左辺の一部を指していてもよいように退避する
			y = bytes.Clone(y)
		}
		subtle.XORBytes(dst, src, y)
	case KindConstant:
		for i, c := range src {
			dst[i] = c ^ s.b
		}
	case KindCyclic:
		k := len(s.key)
		for i, c := range src {
			dst[i] = c ^ s.key[i%k]
		}
	case KindCustom:
		i := 0
		if len(src) > 0 && s.seq != nil {
			for c := range s.seq {
				dst[i] = src[i] ^ c
				i++
				if i == len(src) {
					break
				}
			}
		}
		if i != len(src) {
			panic(&LengthMismatchError{Want: len(src), Got: i})
		}
	}
}
