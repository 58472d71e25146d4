package demo

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule checks a field value and returns a message-bearing error when it fails
type Rule func(string) error

// Required fails on an empty or blank value
func Required(fieldName string) Rule {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// MaxLength fails when the value has more than n characters.
// A limit of zero or less disables the rule.
func MaxLength(fieldName string, n int) Rule {
	return func(s string) error {
		if n <= 0 {
			return nil
		}
		if c := utf8.RuneCountInString(s); c > n {
			return fmt.Errorf("%s must be at most %d characters, got %d", fieldName, n, c)
		}
		return nil
	}
}

// Validate runs rules in order and returns the first failure
func Validate(value string, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(value); err != nil {
			return err
		}
	}
	return nil
}
