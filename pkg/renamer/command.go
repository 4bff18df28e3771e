package renamer

import (
	"encoding/json"
	"fmt"
)

// Mode 重命名模式
type Mode string

const (
	ModeFixed     Mode = "Fixed"     // 固定名称
	ModeSerial    Mode = "Serial"    // 序号命名
	ModeReplace   Mode = "Replace"   // 查找替换
	ModeAdd       Mode = "Add"       // 添加文本
	ModeTrim      Mode = "Trim"      // 删除字符
	ModeExtension Mode = "Extension" // 修改扩展名
	ModeCase      Mode = "Case"      // 大小写转换
	ModeConvert   Mode = "Convert"   // 全角半角转换
)

// Known 返回是否为受支持的重命名模式
func (m Mode) Known() bool {
	switch m {
	case ModeFixed, ModeSerial, ModeReplace, ModeAdd, ModeTrim,
		ModeExtension, ModeCase, ModeConvert:
		return true
	}
	return false
}

// Position 文本操作的位置
type Position string

const (
	PositionStart Position = "start" // 主干开头
	PositionEnd   Position = "end"   // 主干末尾
)

// CaseMode 大小写转换方向
type CaseMode string

const (
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
)

// ConvertMode 全角半角转换方向
type ConvertMode string

const (
	ConvertZenkaku ConvertMode = "zenkaku" // 半角转全角
	ConvertHankaku ConvertMode = "hankaku" // 全角转半角
)

// FixedConfig 固定名称模式配置
type FixedConfig struct {
	Name    string `json:"name"`
	KeepExt bool   `json:"keep_ext"`
}

// SerialConfig 序号命名模式配置
type SerialConfig struct {
	Prefix       string `json:"prefix"`
	Suffix       string `json:"suffix"`
	Number       int    `json:"number"` // 起始序号
	Pad          int    `json:"pad"`    // 最小位数，不足补零
	KeepExt      bool   `json:"keep_ext"`
	KeepOriginal bool   `json:"keep_original"` // 保留原始主干
}

// ReplaceConfig 查找替换模式配置
type ReplaceConfig struct {
	From     string `json:"from"`
	To       string `json:"to"`
	UseRegex bool   `json:"use_regex"`
}

// AddConfig 添加文本模式配置
type AddConfig struct {
	Text     string   `json:"text"`
	Position Position `json:"position"`
}

// TrimConfig 删除字符模式配置
type TrimConfig struct {
	Count    int      `json:"count"` // 删除的字符数
	Position Position `json:"position"`
}

// ExtensionConfig 修改扩展名模式配置
type ExtensionConfig struct {
	NewExt string `json:"new_ext"`
}

// CaseConfig 大小写转换模式配置
type CaseConfig struct {
	Mode CaseMode `json:"mode"`
}

// ConvertConfig 全角半角转换模式配置
type ConvertConfig struct {
	Mode ConvertMode `json:"mode"`
}

// Command 一次批量重命名的完整指令
// 同一时刻只有 Mode 对应的配置字段生效
type Command struct {
	Mode      Mode
	Fixed     FixedConfig
	Serial    SerialConfig
	Replace   ReplaceConfig
	Add       AddConfig
	Trim      TrimConfig
	Extension ExtensionConfig
	Case      CaseConfig
	Convert   ConvertConfig
}

// NewFixed 创建固定名称指令
func NewFixed(name string, keepExt bool) Command {
	return Command{Mode: ModeFixed, Fixed: FixedConfig{Name: name, KeepExt: keepExt}}
}

// NewSerial 创建序号命名指令
func NewSerial(cfg SerialConfig) Command {
	return Command{Mode: ModeSerial, Serial: cfg}
}

// NewReplace 创建查找替换指令
func NewReplace(from, to string, useRegex bool) Command {
	return Command{Mode: ModeReplace, Replace: ReplaceConfig{From: from, To: to, UseRegex: useRegex}}
}

// NewAdd 创建添加文本指令
func NewAdd(text string, pos Position) Command {
	return Command{Mode: ModeAdd, Add: AddConfig{Text: text, Position: pos}}
}

// NewTrim 创建删除字符指令
func NewTrim(count int, pos Position) Command {
	return Command{Mode: ModeTrim, Trim: TrimConfig{Count: count, Position: pos}}
}

// NewExtension 创建修改扩展名指令
func NewExtension(newExt string) Command {
	return Command{Mode: ModeExtension, Extension: ExtensionConfig{NewExt: newExt}}
}

// NewCase 创建大小写转换指令
func NewCase(mode CaseMode) Command {
	return Command{Mode: ModeCase, Case: CaseConfig{Mode: mode}}
}

// NewConvert 创建全角半角转换指令
func NewConvert(mode ConvertMode) Command {
	return Command{Mode: ModeConvert, Convert: ConvertConfig{Mode: mode}}
}

// commandEnvelope 线上传输格式: {"mode": "...", "config": {...}}
type commandEnvelope struct {
	Mode   Mode            `json:"mode"`
	Config json.RawMessage `json:"config"`
}

// MarshalJSON 序列化为 mode/config 信封格式
func (c Command) MarshalJSON() ([]byte, error) {
	var cfg any
	switch c.Mode {
	case ModeFixed:
		cfg = c.Fixed
	case ModeSerial:
		cfg = c.Serial
	case ModeReplace:
		cfg = c.Replace
	case ModeAdd:
		cfg = c.Add
	case ModeTrim:
		cfg = c.Trim
	case ModeExtension:
		cfg = c.Extension
	case ModeCase:
		cfg = c.Case
	case ModeConvert:
		cfg = c.Convert
	default:
		return nil, fmt.Errorf("未知的重命名模式: %q", c.Mode)
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return json.Marshal(commandEnvelope{Mode: c.Mode, Config: raw})
}

// UnmarshalJSON 从 mode/config 信封格式反序列化
// config 缺失时按对应模式的零值配置处理
func (c *Command) UnmarshalJSON(data []byte) error {
	var env commandEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("解析重命名指令失败: %w", err)
	}
	if len(env.Config) == 0 {
		env.Config = json.RawMessage("{}")
	}

	cmd := Command{Mode: env.Mode}
	var target any
	switch env.Mode {
	case ModeFixed:
		target = &cmd.Fixed
	case ModeSerial:
		target = &cmd.Serial
	case ModeReplace:
		target = &cmd.Replace
	case ModeAdd:
		target = &cmd.Add
	case ModeTrim:
		target = &cmd.Trim
	case ModeExtension:
		target = &cmd.Extension
	case ModeCase:
		target = &cmd.Case
	case ModeConvert:
		target = &cmd.Convert
	default:
		return fmt.Errorf("未知的重命名模式: %q", env.Mode)
	}
	if err := json.Unmarshal(env.Config, target); err != nil {
		return fmt.Errorf("解析 %s 模式配置失败: %w", env.Mode, err)
	}
	*c = cmd
	return nil
}
