// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/japanese"

	"github.com/shiroemons/go-cryptopals/internal/xorbreak/config"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/errors"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/fileutil"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/interfaces"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/models"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/parser"
	"github.com/shiroemons/go-cryptopals/internal/xorbreak/report"
	"github.com/shiroemons/go-cryptopals/pkg/bytearray"
	"github.com/shiroemons/go-cryptopals/pkg/crypto"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	fs     interfaces.FileSystem
	parser interfaces.LineParser
	out    io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Logger     interfaces.Logger
	Parser     interfaces.LineParser
	Output     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = config.NewDebugLogger(cfg.DebugMode)
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	lineParser := opts.Parser
	if lineParser == nil {
		lineParser = parser.NewHexLineParser()
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &App{
		config: cfg,
		logger: logger,
		fs:     fs,
		parser: lineParser,
		out:    out,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := a.config.Validate(); err != nil {
		return err
	}

	reporter, err := report.New(a.config.Format)
	if err != nil {
		return err
	}

	a.logger.Printf("モード %s を実行します", a.config.Mode)

	var result models.Result
	switch a.config.Mode {
	case config.ModeHex2Base64:
		result, err = a.runHex2Base64()
	case config.ModeFixedXOR:
		result, err = a.runFixedXOR()
	case config.ModeSingleByte:
		result, err = a.runSingleByte()
	case config.ModeDetect:
		result, err = a.runDetect(ctx)
	case config.ModeRepeatingKey:
		result, err = a.runRepeatingKey()
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownMode, a.config.Mode)
	}
	if err != nil {
		return err
	}
	result.Mode = a.config.Mode

	// 出力の生成
	var buf bytes.Buffer
	if err := reporter.Render(&buf, result); err != nil {
		return err
	}

	if a.config.OutputPath != "" {
		if err := fileutil.SaveToFile(a.fs, a.config.OutputPath, buf.String()); err != nil {
			return fmt.Errorf("%w: %w", ErrSaveFile, err)
		}
		a.logger.Printf("結果を %s に保存しました", a.config.OutputPath)
	}

	// 標準出力にも表示
	_, err = a.out.Write(buf.Bytes())
	return err
}

// runHex2Base64 は16進文字列を base64 に変換します
func (a *App) runHex2Base64() (models.Result, error) {
	buf, err := a.decodeHexFlag("input", a.config.Input)
	if err != nil {
		return models.Result{}, err
	}
	return models.Result{Output: buf.Base64()}, nil
}

// runFixedXOR は同じ長さの2つの16進文字列を XOR します
func (a *App) runFixedXOR() (models.Result, error) {
	lhs, err := a.decodeHexFlag("input", a.config.Input)
	if err != nil {
		return models.Result{}, err
	}
	rhs, err := a.decodeHexFlag("with", a.config.With)
	if err != nil {
		return models.Result{}, err
	}

	if lhs.Len() != rhs.Len() {
		return models.Result{}, fmt.Errorf("%w: %d バイトと %d バイト", ErrLengthMismatch, lhs.Len(), rhs.Len())
	}
	return models.Result{Output: lhs.Xor(bytearray.Borrowed(rhs)).Hex()}, nil
}

// runSingleByte は単一バイト XOR のキーを推定します
func (a *App) runSingleByte() (models.Result, error) {
	ciphertext, err := a.decodeHexFlag("input", a.config.Input)
	if err != nil {
		return models.Result{}, err
	}

	c := crypto.BreakSingleByteKey(ciphertext)
	a.logger.Printf("キー 0x%02x (スコア %d) を選びました", c.Key, c.Score)
	return a.candidateResult(0, c), nil
}

// runDetect は複数行の中から単一バイト XOR で暗号化された行を探します
func (a *App) runDetect(ctx context.Context) (models.Result, error) {
	if a.config.File == "" {
		return models.Result{}, fmt.Errorf("%w: --file", ErrMissingInput)
	}

	if err := a.checkInputFile(a.config.File); err != nil {
		return models.Result{}, err
	}

	raw, err := fileutil.ReadFileLines(a.fs, a.config.File)
	if err != nil {
		return models.Result{}, fmt.Errorf("%w: %w", ErrReadInput, errors.NewInputError("read", a.config.File, err))
	}

	lines, err := a.parser.ParseLines(raw)
	if err != nil {
		if stderrors.Is(err, parser.ErrNoInputLines) {
			return models.Result{}, fmt.Errorf("%w: %s", ErrNoLines, a.config.File)
		}
		return models.Result{}, err
	}
	a.logger.Printf("%s から %d 行を読み込みました", a.config.File, len(lines))

	best, err := crypto.BreakNumberedLines(func(yield func(int, bytearray.Bytes) bool) {
		for _, line := range lines {
			if ctx.Err() != nil {
				return
			}
			if !yield(line.Number, line.Data) {
				return
			}
		}
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return models.Result{}, ctxErr
	}
	if err != nil {
		return models.Result{}, fmt.Errorf("%w: %w", ErrNoLines, err)
	}

	a.logger.Printf("%d行目 キー 0x%02x (スコア %d) を選びました", best.Line, best.Key, best.Score)
	return a.candidateResult(best.Line, best.Candidate), nil
}

// runRepeatingKey は繰り返しキー XOR で入力を暗号化します
func (a *App) runRepeatingKey() (models.Result, error) {
	if a.config.Key == "" {
		return models.Result{}, fmt.Errorf("%w: --key", ErrMissingInput)
	}

	var plaintext []byte
	switch {
	case a.config.Input != "":
		encoded, err := a.encodeText(a.config.Input)
		if err != nil {
			return models.Result{}, err
		}
		plaintext = encoded
	case a.config.File != "":
		if err := a.checkInputFile(a.config.File); err != nil {
			return models.Result{}, err
		}
		data, err := a.fs.ReadFile(a.config.File)
		if err != nil {
			return models.Result{}, fmt.Errorf("%w: %w", ErrReadInput, errors.NewInputError("read", a.config.File, err))
		}
		plaintext = data
	default:
		return models.Result{}, fmt.Errorf("%w: --input または --file", ErrMissingInput)
	}

	ciphertext, err := crypto.RepeatingKeyXOR(bytearray.FromBytes(plaintext), []byte(a.config.Key))
	if err != nil {
		return models.Result{}, err
	}
	return models.Result{Output: ciphertext.Hex()}, nil
}

// checkInputFile は入力ファイルが存在するか確認します
func (a *App) checkInputFile(path string) error {
	if !a.fs.FileExists(path) {
		return fmt.Errorf("%w: %w", ErrReadInput, errors.NewInputError("open", path, ErrFileNotFound))
	}
	return nil
}

// decodeHexFlag はフラグで渡された16進文字列をデコードします
func (a *App) decodeHexFlag(name, value string) (*bytearray.Buffer, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: --%s", ErrMissingInput, name)
	}
	buf, err := bytearray.FromHex(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeInput, errors.NewInputError("--"+name, "", err))
	}
	return buf, nil
}

// encodeText は --encoding に従って文字列をバイト列に変換します
func (a *App) encodeText(s string) ([]byte, error) {
	if a.config.Encoding != config.EncodingShiftJIS {
		return []byte(s), nil
	}
	data, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeInput, err)
	}
	return data, nil
}

// decodePlaintext は --encoding に従って平文を文字列に変換します。
// 変換できない場合は警告を出して空文字列を返します。
func (a *App) decodePlaintext(b bytearray.Bytes) string {
	var (
		text string
		err  error
	)
	if a.config.Encoding == config.EncodingShiftJIS {
		text, err = bytearray.Decode(b, japanese.ShiftJIS)
	} else {
		text, err = bytearray.Text(b)
	}
	if err != nil {
		a.logger.Warnf("平文を文字列に変換できませんでした: %v", err)
		return ""
	}
	return text
}

// candidateResult は解析結果を出力用のモデルに変換します
func (a *App) candidateResult(line int, c crypto.Candidate) models.Result {
	return models.Result{
		HasCandidate: true,
		Line:         line,
		Key:          c.Key,
		Score:        c.Score,
		Plaintext:    a.decodePlaintext(c.Plaintext),
		PlaintextHex: c.Plaintext.Hex(),
	}
}
