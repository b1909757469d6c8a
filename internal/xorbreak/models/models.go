// Package models はxorbreakコマンドで使用するデータモデルを定義します
package models

import (
	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
)

// Line は行番号付きの入力行を表します
type Line struct {
	Number int               // 1始まりの行番号
	Data   *bytearray.Buffer // hexデコード済みのデータ
}

// Result は1回の実行結果を表します
type Result struct {
	Mode   string
	Output string // hex2b64 / fixed-xor / repeating-key の出力

	// single-byte / detect の解析結果
	HasCandidate bool
	Line         int // detect のみ
	Key          byte
	Score        int
	Plaintext    string // 文字列に変換できなかった場合は空
	PlaintextHex string
}
