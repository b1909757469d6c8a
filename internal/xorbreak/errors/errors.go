// Package errors はカスタムエラータイプを提供します
package errors

import (
	"fmt"
)

// InputError は入力の取得に関するエラー
type InputError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス (引数からの入力なら空)
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError は新しいInputErrorを作成します
func NewInputError(op, path string, err error) *InputError {
	return &InputError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// LineError は行単位の解析エラー
type LineError struct {
	Line int   // 1始まりの行番号
	Err  error // 元のエラー
}

// Error はエラーメッセージを返します
func (e *LineError) Error() string {
	return fmt.Sprintf("%d行目の解析エラー: %v", e.Line, e.Err)
}

// Unwrap は元のエラーを返します
func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError は新しいLineErrorを作成します
func NewLineError(line int, err error) *LineError {
	return &LineError{
		Line: line,
		Err:  err,
	}
}
