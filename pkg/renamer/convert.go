package renamer

import "strings"

// toZenkaku 将 ASCII 可见字符转换为全角形式，空格转换为全角空格
func toZenkaku(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '　'
		case r >= '!' && r <= '~':
			return r + 0xFEE0
		}
		return r
	}, s)
}

// toHankaku 将全角字符转换回半角形式，全角空格转换为普通空格
func toHankaku(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '　':
			return ' '
		case r >= '！' && r <= '～':
			return r - 0xFEE0
		}
		return r
	}, s)
}
