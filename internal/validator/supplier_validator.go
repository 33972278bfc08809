package validator

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// 任意の「+」と7〜15桁の数字
	phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailRe.MatchString(s)
}

// 電話番号形式をチェック
func IsPhoneLike(s string) bool {
	return phoneRe.MatchString(s)
}
