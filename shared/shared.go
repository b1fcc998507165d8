package shared

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"frontdesk/shared/failure"
	"slices"
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

// placeholderIDs are the values form controls submit when nothing was selected.
var placeholderIDs = []string{"", "none", "null", "undefined", "nan"}

// BuildCacheKey joins a key prefix and its parts.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// Fingerprint is a stable, non-reversible cache key part for a secret such as a bearer token.
func Fingerprint(secret string) string {
	sum := sha256.Sum256([]byte(secret))

	return hex.EncodeToString(sum[:8])
}

// ParseID reads a positive integer identifier from a form value. Numbers and numeric strings
// are accepted; placeholders, fractions and non-positive values are not.
func ParseID(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
	}

	return ParseIDString(text)
}

// ParseIDString is ParseID for values that are already strings.
func ParseIDString(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if slices.Contains(placeholderIDs, strings.ToLower(text)) {
		return 0, false
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// IsBlankID reports whether raw is absent or one of the placeholders forms submit for "nothing".
func IsBlankID(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return false
		}
	}

	return slices.Contains(placeholderIDs, strings.ToLower(strings.TrimSpace(text)))
}

// NormalizeIDs keeps the usable identifiers of raw in their original order.
func NormalizeIDs(raw []json.RawMessage) []int64 {
	ids := make([]int64, 0, len(raw))

	for _, value := range raw {
		if id, ok := ParseID(value); ok {
			ids = append(ids, id)
		}
	}

	return ids
}

// SelectedIDs returns the distinct identifiers of a quantity map whose quantity is positive,
// in ascending order. Quantities themselves are not part of the result.
func SelectedIDs(quantities map[string]int) []int64 {
	ids := make([]int64, 0, len(quantities))

	for key, qty := range quantities {
		if qty <= 0 {
			continue
		}

		if id, ok := ParseIDString(key); ok {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return slices.Compact(ids)
}

// PathID parses a route parameter into an identifier.
func PathID(value string) (int64, error) {
	id, ok := ParseIDString(value)
	if !ok {
		return 0, failure.BadRequestFromString("invalid id parameter")
	}

	return id, nil
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
