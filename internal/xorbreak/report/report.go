// Package report は実行結果の書き出しを行います
package report

import (
	"fmt"
	"io"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/shiroemons/go-cryptopals/internal/xorbreak/config"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/interfaces"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/models"
)

// New は format に対応するReporterを返します
func New(format string) (interfaces.Reporter, error) {
	switch format {
	case config.FormatText, "":
		return &TextRenderer{}, nil
	case config.FormatJSON:
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// TextRenderer は人が読むためのテキスト形式で結果を書き出します
type TextRenderer struct{}

// Render は result をテキスト形式で w に書き出します
func (r *TextRenderer) Render(w io.Writer, result models.Result) error {
	if !result.HasCandidate {
		_, err := fmt.Fprintln(w, result.Output)
		return err
	}

	if result.Line > 0 {
		if _, err := fmt.Fprintf(w, "line: %d\n", result.Line); err != nil {
			return err
		}
	}
	plaintext := strconv.Quote(result.Plaintext)
	if result.Plaintext == "" && result.PlaintextHex != "" {
		plaintext = "(hex) " + result.PlaintextHex
	}
	_, err := fmt.Fprintf(w, "key: 0x%02x\nscore: %d\nplaintext: %s\n", result.Key, result.Score, plaintext)
	return err
}

// JSONRenderer はJSON形式で結果を書き出します
type JSONRenderer struct{}

// Render は result をJSON形式で w に書き出します
func (r *JSONRenderer) Render(w io.Writer, result models.Result) error {
	fields := map[string]any{
		"mode": result.Mode,
	}
	if result.HasCandidate {
		fields["key"] = int(result.Key)
		fields["score"] = result.Score
		fields["plaintext"] = result.Plaintext
		fields["plaintext_hex"] = result.PlaintextHex
		if result.Line > 0 {
			fields["line"] = result.Line
		}
	} else {
		fields["output"] = result.Output
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildJSON, err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildJSON, err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}
