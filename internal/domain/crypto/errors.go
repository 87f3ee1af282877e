package crypto

import "errors"

// ErrInvalidArgument indicates a malformed input, such as a negative number
// where a nonnegative one is required.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotCoprime indicates that a modular inverse was requested for operands
// that are not relatively prime.
var ErrNotCoprime = errors.New("operands are not relatively prime")

// ErrOverflow indicates that an integer does not fit in the requested fixed
// block size.
var ErrOverflow = errors.New("integer too large for block size")

// ErrMessageTooLong indicates that a message exceeds the maximum length
// supported by the modulus and padding scheme.
var ErrMessageTooLong = errors.New("message too long for key size")

// ErrDecryption is returned for any defect in a decrypted block: wrong
// ciphertext length, wrong header bytes or a missing separator. It carries
// no detail on purpose; distinguishing the cause would hand an attacker a
// padding oracle.
var ErrDecryption = errors.New("decryption failed")

// ErrVerification is returned for any defect in a decoded signature, an
// unknown hash algorithm or a digest mismatch. Like ErrDecryption it never
// reveals which check failed.
var ErrVerification = errors.New("verification failed")
