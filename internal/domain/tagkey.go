package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxTagNameLength is the maximum tag display length in characters.
	MaxTagNameLength = 256

	// MaxSectionNameLength is the hard cap on a derived section name in characters.
	MaxSectionNameLength = 1024

	// UntaggedSectionName names the single section whose tag set is empty.
	UntaggedSectionName = "Untagged"

	sectionNameSeparator = ", "
)

// NormalizedTag is one raw tag after trimming and key derivation.
// Display keeps the caller's casing; Key is used for equality.
type NormalizedTag struct {
	Key     string
	Display string
}

// CanonicalKey returns the comparison key for a display form.
// Lower-casing uses the root locale so the key never depends on the host,
// and maps each rune on its own: Σ always becomes σ, never a word-final ς,
// so a word's key does not depend on the casing it was typed in.
func CanonicalKey(display string) string {
	// A Caser is stateful and must not be shared across goroutines.
	return cases.Lower(language.Und, cases.HandleFinalSigma(false)).String(display)
}

// NormalizeTag trims raw and derives its canonical key.
// ok is false when nothing but whitespace remains.
func NormalizeTag(raw string) (NormalizedTag, bool) {
	display := strings.TrimSpace(raw)
	if display == "" {
		return NormalizedTag{}, false
	}
	return NormalizedTag{Key: CanonicalKey(display), Display: display}, true
}

// NormalizeTags normalizes every raw tag and removes duplicates by key.
// The first display form seen for a key wins and input order is preserved.
// Blank entries and entries longer than MaxTagNameLength are dropped.
func NormalizeTags(raw []string) []NormalizedTag {
	out := make([]NormalizedTag, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		nt, ok := NormalizeTag(r)
		if !ok || utf8.RuneCountInString(nt.Display) > MaxTagNameLength {
			continue
		}
		if _, dup := seen[nt.Key]; dup {
			continue
		}
		seen[nt.Key] = struct{}{}
		out = append(out, nt)
	}
	return out
}

// Keys returns the canonical keys of tags in the same order.
func Keys(tags []NormalizedTag) []string {
	keys := make([]string, len(tags))
	for i, t := range tags {
		keys[i] = t.Key
	}
	return keys
}

// TagSetKey returns the content address of an unordered set of canonical keys.
// Keys are sorted and length-prefixed before hashing, so two inputs map to
// the same value exactly when they hold the same members.
// The empty set has its own fixed key.
func TagSetKey(keys []string) string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	h := sha256.New()
	var lenBuf [binary.MaxVarintLen64]byte
	for _, k := range sorted {
		n := binary.PutUvarint(lenBuf[:], uint64(len(k)))
		h.Write(lenBuf[:n])
		h.Write([]byte(k))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SectionName derives a section's display name from its resolved tags:
// display names in case-insensitive order joined with ", ", cut at
// MaxSectionNameLength characters. An empty tag list yields UntaggedSectionName.
func SectionName(tags []Tag) string {
	if len(tags) == 0 {
		return UntaggedSectionName
	}
	name := strings.Join(TagNames(tags), sectionNameSeparator)
	return truncateRunes(name, MaxSectionNameLength)
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
