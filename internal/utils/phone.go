package utils

import "strings"

// countryCode is prefixed to every normalized phone key. All users of the
// bot are on Brazilian numbers; the messaging provider sometimes delivers
// the sender with and sometimes without the country code.
const countryCode = "55"

// groupSuffix marks senders that are WhatsApp groups rather than
// individual contacts. Group traffic is dropped before the core runs.
const groupSuffix = "@g.us"

// IsGroupSender reports whether a raw sender identifier originates from a
// group conversation.
func IsGroupSender(raw string) bool {
	return strings.Contains(raw, groupSuffix)
}

// NormalizePhone canonicalizes a raw sender identifier into the digit-only
// key used to look up account links. It strips the provider JID suffix
// (e.g. "@s.whatsapp.net"), drops every non-digit, collapses a duplicated
// leading country code and prefixes the country code when absent.
//
// There is no error path: garbage input yields a garbage but deterministic
// key, and the function is idempotent.
func NormalizePhone(raw string) string {
	if at := strings.IndexByte(raw, '@'); at >= 0 {
		raw = raw[:at]
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	// Some providers deliver "+55 55..." style numbers whose country code
	// ends up doubled once the plus sign is stripped. Collapse until a
	// single country code remains so re-normalizing a key is a no-op.
	for strings.HasPrefix(digits, countryCode+countryCode) {
		digits = digits[len(countryCode):]
	}
	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return digits
}
