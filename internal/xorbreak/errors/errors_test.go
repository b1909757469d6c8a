package errors

import (
	stderrors "errors"
	"testing"
)

var errBase = stderrors.New("base")

func TestInputError(t *testing.T) {
	tests := []struct {
		name string
		err  *InputError
		want string
	}{
		{
			name: "パスあり",
			err:  NewInputError("read", "4.txt", errBase),
			want: "read 4.txt: base",
		},
		{
			name: "パスなし",
			err:  NewInputError("decode --input", "", errBase),
			want: "decode --input: base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !stderrors.Is(tt.err, errBase) {
				t.Error("errors.Is で元のエラーに辿り着けない")
			}
		})
	}
}

func TestLineError(t *testing.T) {
	err := NewLineError(7, errBase)
	if got := err.Error(); got != "7行目の解析エラー: base" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, errBase) {
		t.Error("errors.Is で元のエラーに辿り着けない")
	}

	var lineErr *LineError
	if !stderrors.As(error(err), &lineErr) || lineErr.Line != 7 {
		t.Errorf("errors.As で行番号を取り出せない: %v", lineErr)
	}
}
