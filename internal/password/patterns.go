package password

import (
	"regexp"
	"strings"

	"github.com/nbutton23/zxcvbn-go"
)

// commonPasswords is a curated slice of the most frequently breached
// passwords, including popular Russian ones.
var commonPasswords = map[string]struct{}{
	"password": {}, "123456": {}, "12345678": {}, "qwerty": {}, "abc123": {},
	"monkey": {}, "1234567": {}, "letmein": {}, "trustno1": {}, "dragon": {},
	"baseball": {}, "iloveyou": {}, "master": {}, "sunshine": {}, "ashley": {},
	"michael": {}, "shadow": {}, "123123": {}, "654321": {}, "superman": {},
	"qazwsx": {}, "football": {}, "password1": {}, "password123": {},
	"000000": {}, "111111": {}, "1234": {}, "12345": {}, "123456789": {},
	"1234567890": {}, "qwerty123": {}, "1q2w3e4r": {}, "admin": {}, "root": {},
	"welcome": {}, "access": {}, "login": {}, "passw0rd": {}, "hello": {},
	"charlie": {}, "donald": {}, "loveme": {}, "starwars": {}, "solo": {},
	"princess": {}, "hottie": {}, "lovely": {}, "test": {}, "default": {},
	"пароль": {}, "йцукен": {}, "привет": {}, "любовь": {}, "наташа": {},
	"максим": {}, "андрей": {}, "сергей": {}, "россия": {},
}

// keyboardSequences are adjacency runs on Latin and Russian layouts.
var keyboardSequences = []string{
	"qwerty", "qwertyuiop", "asdfghjkl", "zxcvbnm",
	"1234567890", "qazwsx", "1qaz2wsx",
	"йцукен", "фывапр", "ячсмит",
}

// structuralPatterns match password shapes attackers try early.
var structuralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z]+\d{1,4}$`),                   // word123
	regexp.MustCompile(`^\d{6,}$`),                          // digit runs
	regexp.MustCompile(`^[a-z]{1,3}\d{1,3}[a-z]{1,3}$`),     // ab1cd
	regexp.MustCompile(`^(01|12|23|34|45|56|67|78|89|90)+$`), // numeric ladders
}

// hasPatternRisk reports whether the password matches a curated common
// password, contains a keyboard-adjacency sequence, fits a weak structural
// shape, is a repetition of very few characters, or is fully covered by a
// single dictionary word known to crackers.
func hasPatternRisk(password string) bool {
	lowered := strings.ToLower(password)

	if _, ok := commonPasswords[lowered]; ok {
		return true
	}

	for _, seq := range keyboardSequences {
		if strings.Contains(lowered, seq) {
			return true
		}
	}

	for _, pattern := range structuralPatterns {
		if pattern.MatchString(lowered) {
			return true
		}
	}

	runes := []rune(password)
	if len(runes) > 3 && distinctRunes(runes) <= 2 {
		return true
	}

	return isDictionaryWord(password)
}

// isDictionaryWord reports whether a single dictionary entry covers the
// whole password. Partial dictionary hits are deliberately ignored: a long
// passphrase containing a word is not a weak shape by itself.
func isDictionaryWord(password string) bool {
	if password == "" {
		return false
	}

	for _, m := range zxcvbn.PasswordStrength(password, nil).MatchSequence {
		if m.Pattern == "dictionary" && m.I == 0 && m.J == len(password)-1 {
			return true
		}
	}

	return false
}

func distinctRunes(runes []rune) int {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}

	return len(set)
}
