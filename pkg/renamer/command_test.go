package renamer

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCommandMarshalEnvelope(t *testing.T) {
	cmd := NewFixed("holiday", true)
	data, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("序列化指令失败: %v", err)
	}

	var env struct {
		Mode   string          `json:"mode"`
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("解析信封失败: %v", err)
	}
	if env.Mode != "Fixed" {
		t.Errorf("Expected mode %q, got %q", "Fixed", env.Mode)
	}
	if !strings.Contains(string(env.Config), `"keep_ext":true`) {
		t.Errorf("Config missing keep_ext field: %s", env.Config)
	}
	if !strings.Contains(string(env.Config), `"name":"holiday"`) {
		t.Errorf("Config missing name field: %s", env.Config)
	}
}

func TestCommandRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"fixed", NewFixed("x", true)},
		{"serial", NewSerial(SerialConfig{Prefix: "IMG_", Suffix: "_v2", Number: 7, Pad: 3, KeepExt: true, KeepOriginal: true})},
		{"replace literal", NewReplace("draft", "final", false)},
		{"replace regex", NewReplace(`(\d+)`, "n$1", true)},
		{"add", NewAdd("_old", PositionEnd)},
		{"trim", NewTrim(4, PositionStart)},
		{"extension", NewExtension("png")},
		{"case", NewCase(CaseUpper)},
		{"convert", NewConvert(ConvertZenkaku)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.cmd)
			if err != nil {
				t.Fatalf("序列化指令失败: %v", err)
			}
			var got Command
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("反序列化指令失败: %v", err)
			}
			if got != tt.cmd {
				t.Errorf("Expected %+v, got %+v", tt.cmd, got)
			}
		})
	}
}

func TestCommandUnmarshalWire(t *testing.T) {
	raw := `{"mode":"Serial","config":{"prefix":"Vacation_","number":1,"pad":3,"keep_ext":true,"keep_original":false}}`
	var cmd Command
	if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
		t.Fatalf("反序列化指令失败: %v", err)
	}
	if cmd.Mode != ModeSerial {
		t.Errorf("Expected mode %q, got %q", ModeSerial, cmd.Mode)
	}
	if cmd.Serial.Prefix != "Vacation_" || cmd.Serial.Number != 1 || cmd.Serial.Pad != 3 {
		t.Errorf("Unexpected serial config: %+v", cmd.Serial)
	}
	if !cmd.Serial.KeepExt || cmd.Serial.KeepOriginal {
		t.Errorf("Unexpected boolean fields: %+v", cmd.Serial)
	}
}

func TestCommandUnmarshalMissingConfig(t *testing.T) {
	var cmd Command
	if err := json.Unmarshal([]byte(`{"mode":"Case"}`), &cmd); err != nil {
		t.Fatalf("缺少 config 时应按零值处理: %v", err)
	}
	if cmd.Mode != ModeCase {
		t.Errorf("Expected mode %q, got %q", ModeCase, cmd.Mode)
	}
	if cmd.Case.Mode != "" {
		t.Errorf("Expected zero config, got %+v", cmd.Case)
	}
}

func TestCommandUnmarshalUnknownMode(t *testing.T) {
	var cmd Command
	err := json.Unmarshal([]byte(`{"mode":"Shuffle","config":{}}`), &cmd)
	if err == nil {
		t.Fatal("Expected error for unknown mode, got nil")
	}
}

func TestModeKnown(t *testing.T) {
	known := []Mode{ModeFixed, ModeSerial, ModeReplace, ModeAdd, ModeTrim, ModeExtension, ModeCase, ModeConvert}
	for _, m := range known {
		if !m.Known() {
			t.Errorf("Mode %q should be known", m)
		}
	}
	if Mode("Shuffle").Known() {
		t.Error("Unexpected mode should not be known")
	}
	if Mode("").Known() {
		t.Error("Empty mode should not be known")
	}
}
