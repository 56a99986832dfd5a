package usecase

import "strings"

var phoneCleaner = strings.NewReplacer(" ", "", "(", "", ")", "", "-", "")

// NormalizePhone strips spaces, parentheses and hyphens from a phone number.
func NormalizePhone(phone string) string {
	return phoneCleaner.Replace(phone)
}

// PhoneChatLink builds a t.me deep link for a normalized phone number.
// Numbers not starting with the country code 7 get it prepended.
func PhoneChatLink(phone string) string {
	if strings.HasPrefix(phone, "7") {
		return "https://t.me/+" + phone
	}
	return "https://t.me/+7" + phone
}
