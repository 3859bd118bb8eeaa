package protocol

import (
	"errors"
	"testing"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain token",
			input: "1F",
			want:  "1F",
		},
		{
			name:  "lowercase token",
			input: "d1ea",
			want:  "D1EA",
		},
		{
			name:  "0x prefix",
			input: "0x1F",
			want:  "1F",
		},
		{
			name:  "0X prefix",
			input: "0X1f",
			want:  "1F",
		},
		{
			name:  "surrounding whitespace",
			input: "  0157 ",
			want:  "0157",
		},
		{
			name:  "leading zeros preserved",
			input: "0001",
			want:  "0001",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bare prefix",
			input:   "0x",
			wantErr: true,
		},
		{
			name:    "non-hex characters",
			input:   "51G0",
			wantErr: true,
		},
		{
			name:    "negative sign rejected",
			input:   "-1F",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "11223344556677889900",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeHex(%q) = %q, want error", tt.input, got)
				}
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Errorf("error type = %T, want *InvalidInputError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeHex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeHex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Stripping the optional prefix must yield the identical canonical
// token either way.
func TestNormalizeHexPrefixEquivalence(t *testing.T) {
	for _, token := range []string{"1F", "0157", "51700", "DEADBEEF", "0"} {
		plain, err := NormalizeHex(token)
		if err != nil {
			t.Fatalf("NormalizeHex(%q) error: %v", token, err)
		}
		prefixed, err := NormalizeHex("0x" + token)
		if err != nil {
			t.Fatalf("NormalizeHex(%q) error: %v", "0x"+token, err)
		}
		if plain != prefixed {
			t.Errorf("prefix changed canonical token: %q vs %q", plain, prefixed)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		min, max int
		want     string
		wantErr  error
	}{
		{
			name:  "plain positive",
			input: "50",
			min:   CCMMin, max: CCMMax,
			want: "50",
		},
		{
			name:  "plus sign and leading zero normalized",
			input: "+07",
			min:   CCMMin, max: CCMMax,
			want: "7",
		},
		{
			name:  "negative zero normalized",
			input: "-0",
			min:   CCMMin, max: CCMMax,
			want: "0",
		},
		{
			name:  "negative bound inclusive",
			input: "-99",
			min:   CCMMin, max: CCMMax,
			want: "-99",
		},
		{
			name:  "translation bound inclusive",
			input: "255",
			min:   TranslationMin, max: TranslationMax,
			want: "255",
		},
		{
			name:  "ccm above bound",
			input: "100",
			min:   CCMMin, max: CCMMax,
			wantErr: &OutOfRangeError{},
		},
		{
			name:  "translation below bound",
			input: "-256",
			min:   TranslationMin, max: TranslationMax,
			wantErr: &OutOfRangeError{},
		},
		{
			name:  "not a number",
			input: "fast",
			min:   CCMMin, max: CCMMax,
			wantErr: &InvalidInputError{},
		},
		{
			name:  "hex not accepted in signed mode",
			input: "0x10",
			min:   CCMMin, max: CCMMax,
			wantErr: &InvalidInputError{},
		},
		{
			name:  "empty",
			input: "",
			min:   CCMMin, max: CCMMax,
			wantErr: &InvalidInputError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatSigned(tt.input, tt.min, tt.max)
			switch tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("FormatSigned(%q) error: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("FormatSigned(%q) = %q, want %q", tt.input, got, tt.want)
				}
			case *OutOfRangeError:
				var oor *OutOfRangeError
				if !errors.As(err, &oor) {
					t.Fatalf("error = %v (%T), want *OutOfRangeError", err, err)
				}
				if oor.Min != tt.min || oor.Max != tt.max {
					t.Errorf("bounds = [%d,%d], want [%d,%d]", oor.Min, oor.Max, tt.min, tt.max)
				}
			case *InvalidInputError:
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Fatalf("error = %v (%T), want *InvalidInputError", err, err)
				}
			}
		})
	}
}

func TestDisplayHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0x50", "50"},
		{"50", "50"},
		{" 0X1f \r\n", "1f"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayHex(tt.input); got != tt.want {
			t.Errorf("DisplayHex(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDisplayWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0x1a", "0000001A"},
		{"DEADBEEF", "DEADBEEF"},
		{"1234", "00001234"},
		{"", "00000000"},
	}

	for _, tt := range tests {
		if got := DisplayWord(tt.input); got != tt.want {
			t.Errorf("DisplayWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		input   string
		want    uint32
		wantErr bool
	}{
		{input: "0x51700", want: 0x51700},
		{input: "FFFFFFFF", want: 0xFFFFFFFF},
		{input: "0", want: 0},
		{input: "100000000", wantErr: true},
		{input: "xyz", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseWord(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWord(%q) = %#x, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWord(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWord(%q) = %#x, want %#x", tt.input, got, tt.want)
		}
	}
}
