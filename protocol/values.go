package protocol

import (
	"strconv"
	"strings"
)

// NormalizeHex converts a user-supplied hex value into its canonical
// wire token: surrounding whitespace and an optional 0x/0X prefix are
// stripped, the digits are validated, and the token is emitted in
// uppercase. "0x1f", "1f" and "1F" all normalize to "1F".
//
// Returns *InvalidInputError if the remaining token is empty, too long
// or contains non-hex characters.
func NormalizeHex(value string) (string, error) {
	token := strings.TrimSpace(value)
	token = StripHexPrefix(token)

	if token == "" {
		return "", &InvalidInputError{Value: value, Reason: "empty hex value"}
	}
	if len(token) > MaxHexDigits {
		return "", &InvalidInputError{Value: value, Reason: "hex value too long"}
	}
	if _, err := strconv.ParseUint(token, 16, 64); err != nil {
		return "", &InvalidInputError{Value: value, Reason: "not a valid hex value"}
	}

	return strings.ToUpper(token), nil
}

// FormatSigned parses a base-10 signed value and re-emits it as the
// canonical decimal string the firmware expects, normalizing forms like
// "+07" to "7" and "-0" to "0". The bounds are inclusive.
//
// Returns *InvalidInputError if the value does not parse and
// *OutOfRangeError if it parses outside [min, max].
func FormatSigned(value string, min, max int) (string, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return "", &InvalidInputError{Value: value, Reason: "not a signed decimal integer"}
	}

	if n < int64(min) || n > int64(max) {
		return "", &OutOfRangeError{Value: int(n), Min: min, Max: max}
	}

	return strconv.FormatInt(n, 10), nil
}

// StripHexPrefix removes a single leading 0x or 0X marker, if present.
func StripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// DisplayHex converts a hex-mode firmware response into its display
// form: surrounding whitespace and an optional 0x prefix are removed.
// Signed-mode responses are shown as received and must not go through
// this function.
func DisplayHex(response string) string {
	return StripHexPrefix(strings.TrimSpace(response))
}

// DisplayWord converts a firmware response carrying a 32-bit word into
// its display form: prefix stripped, uppercased and zero-padded to
// eight digits, matching how the demo firmware prints status and black
// level words.
func DisplayWord(response string) string {
	token := strings.ToUpper(DisplayHex(response))
	for len(token) < WordDigits {
		token = "0" + token
	}
	return token
}

// ParseWord parses a hex token (optional 0x prefix) as an unsigned
// 32-bit word. Used when a response value feeds a computation rather
// than a display field.
func ParseWord(token string) (uint32, error) {
	t := StripHexPrefix(strings.TrimSpace(token))
	if t == "" {
		return 0, &InvalidInputError{Value: token, Reason: "empty hex word"}
	}
	n, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, &InvalidInputError{Value: token, Reason: "not a 32-bit hex word"}
	}
	return uint32(n), nil
}
