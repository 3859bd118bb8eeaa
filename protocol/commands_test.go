package protocol

import (
	"errors"
	"testing"
)

func TestBuildSensorCommands(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (string, error)
		want    string
		wantErr bool
	}{
		{
			name:  "read analog gain",
			build: func() (string, error) { return BuildSensorRead(RegAnalogGain) },
			want:  "S R 0157",
		},
		{
			name:  "write analog gain with prefix",
			build: func() (string, error) { return BuildSensorWrite("0157", "0x1F") },
			want:  "S W 0157 1F",
		},
		{
			name:  "write lowercase value",
			build: func() (string, error) { return BuildSensorWrite(RegClampMSB, "0a") },
			want:  "S W D1EA 0A",
		},
		{
			name:    "write empty value",
			build:   func() (string, error) { return BuildSensorWrite("0157", "") },
			wantErr: true,
		},
		{
			name:    "write bare prefix",
			build:   func() (string, error) { return BuildSensorWrite("0157", "0x") },
			wantErr: true,
		},
		{
			name:    "bad address",
			build:   func() (string, error) { return BuildSensorRead("zz") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("got %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCCMCommands(t *testing.T) {
	got, err := BuildCCMWrite("05", "50")
	if err != nil {
		t.Fatalf("BuildCCMWrite error: %v", err)
	}
	if got != "C W 05 50" {
		t.Errorf("BuildCCMWrite = %q, want %q", got, "C W 05 50")
	}

	got, err = BuildCCMWrite("0A", "+07")
	if err != nil {
		t.Fatalf("BuildCCMWrite error: %v", err)
	}
	if got != "C W 0A 7" {
		t.Errorf("BuildCCMWrite = %q, want %q", got, "C W 0A 7")
	}

	if _, err = BuildCCMWrite("05", "100"); err == nil {
		t.Error("BuildCCMWrite accepted 100, want out of range error")
	}
	var oor *OutOfRangeError
	if _, err = BuildCCMWrite("05", "-100"); !errors.As(err, &oor) {
		t.Errorf("BuildCCMWrite error = %T, want *OutOfRangeError", err)
	}

	got, err = BuildCCMRead("0D")
	if err != nil {
		t.Fatalf("BuildCCMRead error: %v", err)
	}
	if got != "C R 0D" {
		t.Errorf("BuildCCMRead = %q, want %q", got, "C R 0D")
	}

	if got := BuildCCMUpload(); got != "C U" {
		t.Errorf("BuildCCMUpload = %q, want %q", got, "C U")
	}
}

func TestBuildTranslationCommands(t *testing.T) {
	got, err := BuildTranslationWrite("02", "-255")
	if err != nil {
		t.Fatalf("BuildTranslationWrite error: %v", err)
	}
	if got != "T W 02 -255" {
		t.Errorf("BuildTranslationWrite = %q, want %q", got, "T W 02 -255")
	}

	if _, err = BuildTranslationWrite("02", "256"); err == nil {
		t.Error("BuildTranslationWrite accepted 256, want out of range error")
	}

	got, err = BuildTranslationRead("04")
	if err != nil {
		t.Fatalf("BuildTranslationRead error: %v", err)
	}
	if got != "T R 04" {
		t.Errorf("BuildTranslationRead = %q, want %q", got, "T R 04")
	}
}

func TestBuildFpgaCommands(t *testing.T) {
	got, err := BuildFpgaRead(StatusAddr, DefaultSubOffset)
	if err != nil {
		t.Fatalf("BuildFpgaRead error: %v", err)
	}
	if got != "F R 51400 00" {
		t.Errorf("BuildFpgaRead = %q, want %q", got, "F R 51400 00")
	}

	got, err = BuildFpgaWrite("51700", "00", "000A141E")
	if err != nil {
		t.Fatalf("BuildFpgaWrite error: %v", err)
	}
	if got != "F W 51700 00 000A141E" {
		t.Errorf("BuildFpgaWrite = %q, want %q", got, "F W 51700 00 000A141E")
	}

	// Single-digit sub-offsets pad to the fixed two digits.
	got, err = BuildFpgaRead("51460", "0")
	if err != nil {
		t.Fatalf("BuildFpgaRead error: %v", err)
	}
	if got != "F R 51460 00" {
		t.Errorf("BuildFpgaRead = %q, want %q", got, "F R 51460 00")
	}

	if _, err = BuildFpgaWrite("51700", "00", ""); err == nil {
		t.Error("BuildFpgaWrite accepted empty data, want error")
	}
}

func TestBuildPresetGamma(t *testing.T) {
	got, err := BuildPresetGamma("0x2")
	if err != nil {
		t.Fatalf("BuildPresetGamma error: %v", err)
	}
	if got != "G 2" {
		t.Errorf("BuildPresetGamma = %q, want %q", got, "G 2")
	}

	if _, err = BuildPresetGamma("curve"); err == nil {
		t.Error("BuildPresetGamma accepted non-hex index, want error")
	}
}

func TestBuildVerboseOff(t *testing.T) {
	if got := BuildVerboseOff(); got != "V OFF" {
		t.Errorf("BuildVerboseOff = %q, want %q", got, "V OFF")
	}
}

func TestRegisterTables(t *testing.T) {
	if len(CCMCoefficients) != 9 {
		t.Errorf("CCMCoefficients has %d entries, want 9", len(CCMCoefficients))
	}
	if len(TranslationCoefficients) != 3 {
		t.Errorf("TranslationCoefficients has %d entries, want 3", len(TranslationCoefficients))
	}

	for _, r := range CCMCoefficients {
		if r.Mode != ModeSigned || r.Min != CCMMin || r.Max != CCMMax {
			t.Errorf("coefficient %s: mode/bounds = %v [%d,%d], want signed [%d,%d]",
				r.Name, r.Mode, r.Min, r.Max, CCMMin, CCMMax)
		}
	}

	reg, ok := FindRegister("MRR")
	if !ok {
		t.Fatal("FindRegister(MRR) not found")
	}
	if reg.Addr != "05" || reg.Namespace != NamespaceCCM {
		t.Errorf("MRR = %+v, want addr 05 in namespace C", reg)
	}

	if _, ok := FindRegister("no such register"); ok {
		t.Error("FindRegister matched a nonexistent name")
	}
}
