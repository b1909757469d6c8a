package app

import "errors"

var (
	// ErrMissingInput は必要な入力が指定されていない場合のエラー
	ErrMissingInput = errors.New("入力が指定されていません")

	// ErrDecodeInput は入力のデコードに失敗した場合のエラー
	ErrDecodeInput = errors.New("入力のデコードに失敗しました")

	// ErrFileNotFound は入力ファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("入力ファイルが見つかりません")

	// ErrReadInput は入力ファイルの読み込みに失敗した場合のエラー
	ErrReadInput = errors.New("入力ファイルの読み込みに失敗しました")

	// ErrLengthMismatch は2つの入力の長さが異なる場合のエラー
	ErrLengthMismatch = errors.New("入力の長さが一致しません")

	// ErrNoLines は解析対象の行がない場合のエラー
	ErrNoLines = errors.New("解析対象の行がありません")

	// ErrEncodeInput は入力の文字コード変換に失敗した場合のエラー
	ErrEncodeInput = errors.New("入力の文字コード変換に失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")
)
