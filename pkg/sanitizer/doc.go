// Package sanitizer normalizes guest and wishlist input before validation.
//
// Every function is idempotent and never fails: input that cannot be
// normalized comes back empty so the validator reports it as missing.
//
//   - Phones: E.164, trying Jordan, then the US, then the UK for local numbers
//   - Names and free text: trimmed with inner whitespace collapsed
//   - Emails, categories and search terms: trimmed and lowercased
//   - Slices: normalized, empty values dropped, duplicates removed in order
package sanitizer
