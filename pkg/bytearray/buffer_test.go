package bytearray

import (
	"bytes"
	"errors"
	"testing"
)

// mustPanicWith は f が target に一致する error で panic することを確認します
func mustPanicWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("panic しなかった, want %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want %v", r, target)
		}
	}()
	f()
}

func TestFromHex_ToBase64(t *testing.T) {
	in := "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d"
	want := "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t"

	buf, err := FromHex(in)
	if err != nil {
		t.Fatalf("FromHex() error: %v", err)
	}
	if got := buf.Base64(); got != want {
		t.Errorf("Base64() = %s, want %s", got, want)
	}
	if got := buf.Hex(); got != in {
		t.Errorf("Hex() = %s, want %s", got, in)
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{
			name:     "小文字",
			input:    "00ff7f",
			expected: []byte{0x00, 0xFF, 0x7F},
		},
		{
			name:     "大文字",
			input:    "ABCD",
			expected: []byte{0xAB, 0xCD},
		},
		{
			name:     "空文字列",
			input:    "",
			expected: []byte{},
		},
		{
			name:    "16進以外の文字",
			input:   "zz",
			wantErr: true,
		},
		{
			name:    "奇数桁",
			input:   "abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := FromHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromHex() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrDecode) {
					t.Errorf("FromHex() error = %v, want ErrDecode", err)
				}
				if buf != nil {
					t.Errorf("FromHex() がエラー時にバッファを返した: %v", buf)
				}
				return
			}
			if !bytes.Equal(buf.Slice(), tt.expected) {
				t.Errorf("FromHex() = %x, want %x", buf.Slice(), tt.expected)
			}
		})
	}
}

func TestFromBase64(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "パディングなし", input: "Zm9v", expected: "foo"},
		{name: "パディング1つ", input: "Zm9vYmE=", expected: "fooba"},
		{name: "パディング2つ", input: "Zm9vYg==", expected: "foob"},
		{name: "パディング不足", input: "Zm9vYg", wantErr: true},
		{name: "不正な文字", input: "Zm9v!!!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := FromBase64(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromBase64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrDecode) {
					t.Errorf("FromBase64() error = %v, want ErrDecode", err)
				}
				return
			}
			if string(buf.Slice()) != tt.expected {
				t.Errorf("FromBase64() = %q, want %q", buf.Slice(), tt.expected)
			}
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	// 全バイト値を含むデータで hex / base64 の往復を確認
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	for n := 0; n <= len(data); n += 37 {
		buf := FromBytes(data[:n])

		fromHex, err := FromHex(buf.Hex())
		if err != nil {
			t.Fatalf("n=%d: FromHex() error: %v", n, err)
		}
		if !fromHex.Equal(buf) {
			t.Errorf("n=%d: hex の往復で内容が変わった", n)
		}

		fromB64, err := FromBase64(buf.Base64())
		if err != nil {
			t.Fatalf("n=%d: FromBase64() error: %v", n, err)
		}
		if !fromB64.Equal(buf) {
			t.Errorf("n=%d: base64 の往復で内容が変わった", n)
		}
	}
}

func TestFromBytes_Copies(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03}
	buf := FromBytes(src)
	src[0] = 0xFF

	if buf.Slice()[0] != 0x01 {
		t.Errorf("FromBytes() が入力を共有している: %x", buf.Slice())
	}

	out := buf.Bytes()
	out[1] = 0xFF
	if buf.Slice()[1] != 0x02 {
		t.Errorf("Bytes() が内部を共有している: %x", buf.Slice())
	}
}

func TestBuffer_Text(t *testing.T) {
	tests := []struct {
		name       string
		input      []byte
		expected   string
		wantErr    bool
		wantOffset int
	}{
		{name: "ASCII", input: []byte("Cooking MC's like a pound of bacon"), expected: "Cooking MC's like a pound of bacon"},
		{name: "マルチバイト", input: []byte("東方"), expected: "東方"},
		{name: "空", input: []byte{}, expected: ""},
		{name: "不正なバイト", input: []byte{'f', 0xFF, 'o'}, wantErr: true, wantOffset: 1},
		{name: "途中で切れた文字", input: []byte{'a', 0xE6, 0x9D}, wantErr: true, wantOffset: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromBytes(tt.input).Text()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Text() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrEncoding) {
					t.Errorf("Text() error = %v, want ErrEncoding", err)
				}
				var encErr *EncodingError
				if !errors.As(err, &encErr) {
					t.Fatalf("Text() error = %T, want *EncodingError", err)
				}
				if encErr.Offset != tt.wantOffset {
					t.Errorf("Offset = %d, want %d", encErr.Offset, tt.wantOffset)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("Text() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuffer_Histogram(t *testing.T) {
	h := FromString("aab\x00").Histogram()
	if h['a'] != 2 || h['b'] != 1 || h[0] != 1 {
		t.Errorf("Histogram() = a:%d b:%d 0:%d, want 2 1 1", h['a'], h['b'], h[0])
	}
	total := 0
	for _, c := range h {
		total += c
	}
	if total != 4 {
		t.Errorf("合計 = %d, want 4", total)
	}
}

func TestBuffer_Xor(t *testing.T) {
	a, err := FromHex("1c0111001f010100061a024b53535009181c")
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromHex("686974207468652062756c6c277320657965")
	if err != nil {
		t.Fatal(err)
	}

	got := a.Xor(Borrowed(b))
	if want := "746865206b696420646f6e277420706c6179"; got.Hex() != want {
		t.Errorf("Xor() = %s, want %s", got.Hex(), want)
	}

	// 入力は変更されない
	if a.Hex() != "1c0111001f010100061a024b53535009181c" {
		t.Errorf("Xor() が左辺を書き換えた: %s", a.Hex())
	}

	// (a ^ b) ^ b == a
	if back := got.Xor(Borrowed(b)); !back.Equal(a) {
		t.Errorf("XOR を2回適用しても元に戻らない: %s", back.Hex())
	}
}

func TestBuffer_Xor_LengthMismatch(t *testing.T) {
	a := FromBytes([]byte{1, 2, 3})
	b := FromBytes([]byte{1, 2, 3, 4})

	mustPanicWith(t, ErrLengthMismatch, func() {
		a.Xor(Borrowed(b))
	})
	mustPanicWith(t, ErrLengthMismatch, func() {
		a.XorAssign(Borrowed(b))
	})

	defer func() {
		r := recover()
		var lm *LengthMismatchError
		if err, ok := r.(error); !ok || !errors.As(err, &lm) {
			t.Fatalf("panic = %v, want *LengthMismatchError", r)
		}
		if lm.Want != 3 || lm.Got != 4 {
			t.Errorf("LengthMismatchError = %+v, want Want=3 Got=4", lm)
		}
	}()
	a.Xor(Borrowed(b))
}

func TestBuffer_XorAssign_MatchesXor(t *testing.T) {
	streams := map[string]func() Stream{
		"constant": func() Stream { return Constant(0x5A) },
		"cyclic":   func() Stream { return MustCyclic([]byte("ICE")) },
		"borrowed": func() Stream { return Borrowed(FromString("0123456789abcdef")) },
		"custom":   func() Stream { return Custom(counter(7), Infinite) },
	}

	for name, mk := range streams {
		t.Run(name, func(t *testing.T) {
			a := FromString("the quick brown ")
			want := a.Xor(mk())

			a.XorAssign(mk())
			if !a.Equal(want) {
				t.Errorf("XorAssign() = %s, want %s", a.Hex(), want.Hex())
			}
		})
	}
}

func TestBuffer_XorAssign_Self(t *testing.T) {
	a := FromString("self")
	a.XorAssign(Borrowed(a))
	if !bytes.Equal(a.Slice(), make([]byte, 4)) {
		t.Errorf("a ^= a = %x, want 00000000", a.Slice())
	}
}

func TestBuffer_Resize(t *testing.T) {
	buf := FromString("abcdef")

	buf.Resize(3)
	if string(buf.Slice()) != "abc" {
		t.Errorf("縮小後 = %q, want %q", buf.Slice(), "abc")
	}

	buf.Resize(5)
	if !bytes.Equal(buf.Slice(), []byte{'a', 'b', 'c', 0, 0}) {
		t.Errorf("拡大後 = %q, 末尾はゼロのはず", buf.Slice())
	}

	buf.Append('x', 'y')
	if buf.Len() != 7 {
		t.Errorf("Len() = %d, want 7", buf.Len())
	}

	mustPanicWith(t, ErrOutOfRange, func() {
		buf.Resize(-1)
	})
}
