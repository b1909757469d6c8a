package crypto

import (
	"iter"

	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
)

// Candidate は単一バイト XOR の解析結果です
type Candidate struct {
	Key       byte
	Score     int
	Plaintext *bytearray.Buffer
}

// LineCandidate は複数行の解析で最も良かった行の結果です
type LineCandidate struct {
	Line int // 1始まりの行番号
	Candidate
}

// BreakSingleByteKey は 0x00 から 0xFF までのキーを昇順に試し、
// Score が最大になった候補を返します。
// 同点の場合は先に見つかった (値の小さい) キーが残ります。
func BreakSingleByteKey(ciphertext bytearray.Bytes) Candidate {
	best := Candidate{Score: -1}
	for key := 0; key < 256; key++ {
		plain := bytearray.Xor(ciphertext, bytearray.Constant(byte(key)))
		if score := Score(plain); score > best.Score {
			best = Candidate{Key: byte(key), Score: score, Plaintext: plain}
		}
	}
	return best
}

// BreakSingleByteKeyAcrossLines は各行に BreakSingleByteKey を適用し、
// 全体で最もスコアの高い行を返します。行番号は lines の添字 + 1 です。
// 同点の場合は先の行が残ります。lines が空の場合は ErrNoLines を返します。
func BreakSingleByteKeyAcrossLines(lines []bytearray.Bytes) (LineCandidate, error) {
	return BreakNumberedLines(func(yield func(int, bytearray.Bytes) bool) {
		for i, line := range lines {
			if !yield(i+1, line) {
				return
			}
		}
	})
}

// BreakNumberedLines は行番号付きのシーケンスに対して
// BreakSingleByteKeyAcrossLines と同じ比較規則で最良の行を返します。
func BreakNumberedLines(lines iter.Seq2[int, bytearray.Bytes]) (LineCandidate, error) {
	best := LineCandidate{Candidate: Candidate{Score: -1}}
	found := false
	for n, line := range lines {
		c := BreakSingleByteKey(line)
		if c.Score > best.Score {
			best = LineCandidate{Line: n, Candidate: c}
		}
		found = true
	}
	if !found {
		return LineCandidate{}, ErrNoLines
	}
	return best, nil
}
