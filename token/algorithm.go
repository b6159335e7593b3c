package token

import (
	"github.com/lestrrat-go/jwx/v2/jwa"
)

// Algorithm identifies a JWS signing algorithm by its registered name.
type Algorithm string

// Supported signing algorithms.
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"
	ES256 Algorithm = "ES256"
	ES384 Algorithm = "ES384"
	ES512 Algorithm = "ES512"
	PS256 Algorithm = "PS256"
	PS384 Algorithm = "PS384"
	PS512 Algorithm = "PS512"
	None  Algorithm = "none"
)

// supported lists every algorithm the verifier accepts, in the order they
// are reported to callers.
var supported = []Algorithm{
	HS256, HS384, HS512,
	RS256, RS384, RS512,
	ES256, ES384, ES512,
	PS256, PS384, PS512,
	None,
}

// ParseAlgorithm resolves a header value to a supported algorithm. The
// second return value is false when the name is not in the supported set.
func ParseAlgorithm(name string) (Algorithm, bool) {
	for _, a := range supported {
		if string(a) == name {
			return a, true
		}
	}
	return "", false
}

// AlgorithmNames returns the names of all supported algorithms.
func AlgorithmNames() []string {
	names := make([]string, len(supported))
	for i, a := range supported {
		names[i] = string(a)
	}
	return names
}

// String returns the registered algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// symmetric reports whether the algorithm uses a shared secret.
func (a Algorithm) symmetric() bool {
	switch a {
	case HS256, HS384, HS512:
		return true
	}
	return false
}

// rsaBased reports whether the algorithm expects an RSA public key.
func (a Algorithm) rsaBased() bool {
	switch a {
	case RS256, RS384, RS512, PS256, PS384, PS512:
		return true
	}
	return false
}

// ecdsaBased reports whether the algorithm expects an ECDSA public key.
func (a Algorithm) ecdsaBased() bool {
	switch a {
	case ES256, ES384, ES512:
		return true
	}
	return false
}

// signature returns the jwa algorithm used for verification.
func (a Algorithm) signature() jwa.SignatureAlgorithm {
	return jwa.SignatureAlgorithm(a)
}
