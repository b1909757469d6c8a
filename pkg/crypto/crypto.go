// Package crypto は bytearray の上に組み立てた XOR 暗号とその解析を提供します。
//
// 主な機能:
//   - SingleByteXOR / RepeatingKeyXOR: 単一バイト XOR と繰り返しキー XOR
//   - Score: 英文らしさの頻度スコア
//   - BreakSingleByteKey: 単一バイト XOR のキーの総当たり
//   - BreakSingleByteKeyAcrossLines: 複数行の中から単一バイト XOR された行を探す
//   - RollingKeyStream / MTKeyStream: Custom ストリーム用のキーストリーム
package crypto
