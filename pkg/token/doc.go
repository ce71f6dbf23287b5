// Package token provides token identifier generation.
//
// Token Format:
//
//   - 32 lowercase hexadecimal characters (an MD5 digest)
//   - Digest input: a fresh ULID followed by 16 random bytes
//
// Generated identifiers are opaque and only probabilistically unique.
// Callers must still check a new identifier against the tokens they
// already hold before accepting it.
package token
