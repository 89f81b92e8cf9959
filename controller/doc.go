// Package controller decides authenticity: it decodes the secret code
// carried by a watermark graph and compares it to the expected code.
//
// The expected code ζ supplies the only side information: its base-6 digit
// length μ tells the decoder how many ring nodes to walk. Nothing else is
// transmitted or persisted.
//
// Verify never propagates structural decode failures — a broken ring or an
// unreachable digit target simply makes the result non-authentic, with the
// failure recorded in Result.Err. The only hard error is a negative (or
// missing) expected code, which is a caller configuration mistake.
package controller
