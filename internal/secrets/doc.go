// Package secrets provides value-level encryption for envdeck.
//
// Earlier env editors of this kind shelled out to an external CLI with key
// material interpolated into command strings, which is a command-injection
// hazard. envdeck binds the primitives directly instead: values are sealed
// in-process with NaCl secretbox and no subprocess is ever involved.
//
// # Encryption Scheme
//
// Each workspace has a single random 256-bit symmetric key, generated by
// `envdeck init` and stored PEM-encoded at .envdeck/envdeck.key with 0600
// permissions.
//
// Individual entry values are sealed with secretbox using a random 24-byte
// nonce prepended to the ciphertext. The stored form is
//
//	encrypted:<base64(nonce || ciphertext)>
//
// The "encrypted:" prefix is the same literal marker the envfile store uses
// to flag entries, so a sealed value survives any round trip through the
// editor as an ordinary opaque string. Sealing is non-deterministic:
// re-encrypting the same plaintext produces different output.
//
// # Security Considerations
//
// The key file should keep 0600 permissions. The package reports when
// permissions are too permissive but does not enforce this.
package secrets
