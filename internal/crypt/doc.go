// Package crypt provides the cryptographic core of alplock: sealing files
// with AES-128-GCM, compressing the sealed payload, and moving files
// between their plaintext and encrypted names.
//
// # Pipeline
//
// Encryption reads the whole file, seals it, then compresses:
//
//	plaintext -> AES-128-GCM seal -> gzip (best compression) -> .alp file
//
// Decryption runs the same stages in reverse. Compression comes after
// sealing, so the on-disk payload is gzip(ciphertext || tag); the gzip
// layer mostly absorbs the storage overhead of the authentication tag,
// since ciphertext itself does not compress.
//
// # Key material and credentials
//
// Every file is sealed under a fresh 16-byte key and 12-byte nonce from
// Engine.GenerateKeyMaterial. The pair is handed to the user as a single
// credential string, hex(key)#hex(nonce), which is the only way to recover
// the file. Credentials are never written to disk by this package.
//
// # Naming
//
// Encrypting notes.txt produces notes.txt.alp and removes notes.txt.
// Decrypting strips the .alp extension; a payload whose name does not end
// in .alp is decrypted in place under its existing name. Writes go through
// a temporary sibling and a rename, so the source file outlives any crash
// that happens before its replacement is durable.
//
// # Failure behavior
//
// Decryption authenticates before anything is written: a wrong credential
// or a tampered payload yields ErrAuthenticationFailed and leaves the
// encrypted file untouched.
package crypt
