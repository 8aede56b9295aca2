package domain

// Algorithm represents the AEAD algorithm used for field encryption.
//
// Both supported algorithms provide Authenticated Encryption with Associated
// Data (AEAD) with 256-bit keys and 12-byte nonces, so a tampered ciphertext
// or a wrong key always fails authentication instead of yielding garbage
// plaintext.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on platforms without AES-NI
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the size in bytes of every DEK and of the application secret
	// key. Both supported AEADs take 256-bit keys.
	KeySize = 32

	// NonceSize is the nonce size shared by AES-GCM and ChaCha20-Poly1305.
	// Armored ciphertexts carry the nonce prepended to the sealed data.
	NonceSize = 12
)
