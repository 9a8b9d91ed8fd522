// Package auth implements the authentication core of the SkillQuest learning
// platform: credential verification, typed access/refresh JWT issuance, and
// request-scoped session resolution.
//
// Tokens:
//   - Tokens are signed with an asymmetric RSA key pair (RS256). The signing
//     side holds the private key; any verifying process only needs the public
//     key. TokenService is the codec, TokenMinter builds the two token kinds
//     with their distinct claims and lifetimes.
//   - Claims carry a `type` field ("access" or "refresh"). A token presented
//     for the wrong purpose is rejected with an error naming both the actual
//     and the expected kind, distinct from expiry or signature failures.
//
// Sessions:
//   - SessionResolver turns a raw token into a concrete User record: extract,
//     decode, type-check, then a point lookup against the credential store.
//     The path is read-only; nothing is persisted per request and issued
//     tokens are never stored, so there is no revocation list. A leaked token
//     stays valid until expiry.
//
// Credentials:
//   - UserProvider verifies login/password as a single conjunctive predicate.
//     Unknown login and wrong password produce the same error so callers
//     cannot tell which half failed.
package auth
