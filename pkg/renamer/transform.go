package renamer

import (
	"fmt"
	"regexp"
	"strings"
)

// transformer 按指令计算新文件名，整个批次复用同一个实例
// Replace 模式的正则表达式只在创建时编译一次
type transformer struct {
	cmd Command
	seq *SequenceState
	re  *regexp.Regexp
}

// newTransformer 创建转换器
// use_regex 的模式编译失败时返回错误，由调度器转换为 InvalidPattern
func newTransformer(cmd Command, seq *SequenceState) (*transformer, error) {
	if seq == nil {
		seq = NewBatchSequence()
	}
	if cmd.Mode == ModeSerial && seq.Policy != PolicyManual {
		seq.Next = cmd.Serial.Number
	}

	t := &transformer{cmd: cmd, seq: seq}
	if cmd.Mode == ModeReplace && cmd.Replace.UseRegex {
		re, err := regexp.Compile(cmd.Replace.From)
		if err != nil {
			return nil, fmt.Errorf("编译替换模式失败: %w", err)
		}
		t.re = re
	}
	return t, nil
}

// apply 计算单个文件的新名称，除 Extension 模式外只改写主干
func (t *transformer) apply(c Components) Components {
	out := c
	switch t.cmd.Mode {
	case ModeFixed:
		out.Stem = t.cmd.Fixed.Name
		if !t.cmd.Fixed.KeepExt {
			out.Ext = ""
		}
	case ModeSerial:
		cfg := t.cmd.Serial
		stem := cfg.Prefix
		if cfg.KeepOriginal {
			stem += c.Stem
		}
		stem += zeroPad(t.seq.Take(), cfg.Pad) + cfg.Suffix
		out.Stem = stem
		if !cfg.KeepExt {
			out.Ext = ""
		}
	case ModeReplace:
		if t.re != nil {
			out.Stem = t.re.ReplaceAllString(c.Stem, t.cmd.Replace.To)
		} else {
			out.Stem = strings.ReplaceAll(c.Stem, t.cmd.Replace.From, t.cmd.Replace.To)
		}
	case ModeAdd:
		if t.cmd.Add.Position == PositionStart {
			out.Stem = t.cmd.Add.Text + c.Stem
		} else {
			out.Stem = c.Stem + t.cmd.Add.Text
		}
	case ModeTrim:
		out.Stem = trimStem(c.Stem, t.cmd.Trim.Count, t.cmd.Trim.Position)
	case ModeExtension:
		out.Ext = strings.TrimLeft(t.cmd.Extension.NewExt, ".")
	case ModeCase:
		if t.cmd.Case.Mode == CaseUpper {
			out.Stem = strings.ToUpper(c.Stem)
		} else {
			out.Stem = strings.ToLower(c.Stem)
		}
	case ModeConvert:
		if t.cmd.Convert.Mode == ConvertZenkaku {
			out.Stem = toZenkaku(c.Stem)
		} else {
			out.Stem = toHankaku(c.Stem)
		}
	}
	return out
}

// zeroPad 以十进制渲染序号，不足 pad 位时左侧补零
// 位数超出 pad 时完整保留，不截断
func zeroPad(n, pad int) string {
	return fmt.Sprintf("%0*d", pad, n)
}

// trimStem 按字符数裁剪主干，按 Unicode 字符计数而非字节
// count 不小于主干长度时裁剪为空，由校验器判定 EmptyName
func trimStem(stem string, count int, pos Position) string {
	if count <= 0 {
		return stem
	}
	runes := []rune(stem)
	if count >= len(runes) {
		return ""
	}
	if pos == PositionStart {
		return string(runes[count:])
	}
	return string(runes[:len(runes)-count])
}
