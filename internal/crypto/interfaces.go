package crypto

// SafeCodec turns single values into self-describing ciphertext tokens and
// back. [*Safe] is the only production implementation.
//
// Token layout:
//
//	<prefix><hex(AES-256-CTR(plaintext))>
//
// The prefix alone decides how a token is decoded: scalar tokens decode to
// a string, structured tokens decode to the JSON value they were
// serialized from.
type SafeCodec interface {
	// Write encrypts value. Strings are encrypted as-is under the scalar
	// prefix; any other value is JSON-serialized first and encrypted under
	// the structured prefix.
	Write(value any) (string, error)

	// Read decrypts a token produced by Write (or by any historical writer
	// whose prefix is still registered).
	Read(token string) (any, error)
}
