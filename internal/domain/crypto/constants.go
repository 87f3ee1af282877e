package crypto

// AlgorithmRSA represents the RSA encryption/signature algorithm
const AlgorithmRSA = "RSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// DefaultPublicExponent is the public exponent used for generated key pairs
const DefaultPublicExponent = 65537

// Supported hash algorithm names for signing and verification
const (
	HashMD5    = "MD5"
	HashSHA1   = "SHA-1"
	HashSHA256 = "SHA-256"
	HashSHA384 = "SHA-384"
	HashSHA512 = "SHA-512"
)

// HashAlgorithms lists every hash algorithm name the engine accepts.
var HashAlgorithms = []string{HashMD5, HashSHA1, HashSHA256, HashSHA384, HashSHA512}
