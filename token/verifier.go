package token

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Verdict classifies the outcome of verifying a token.
type Verdict int

// Verification verdicts.
const (
	// VerdictOK means the token verified and is within its validity window.
	VerdictOK Verdict = iota

	// VerdictMalformed means the value is not a compact JWS at all.
	VerdictMalformed

	// VerdictSignatureInvalid means the token parsed but could not be
	// verified against the configured key and algorithm, or its claims
	// are otherwise invalid.
	VerdictSignatureInvalid

	// VerdictExpired means the token verified but has aged out.
	VerdictExpired
)

// String returns a short label for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictMalformed:
		return "malformed"
	case VerdictSignatureInvalid:
		return "signature_invalid"
	case VerdictExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a verification attempt. Payload holds the
// raw claims JSON and is set only when Verdict is VerdictOK; Message carries
// the verifier's detail for every other verdict.
type Result struct {
	Verdict Verdict
	Payload []byte
	Message string
}

// Verifier checks compact signed tokens against a single key. The key
// material is a PEM-encoded public key for asymmetric algorithms or the
// shared secret for HMAC algorithms. A Verifier is immutable after
// construction and safe for concurrent use.
type Verifier struct {
	key  string
	skew time.Duration

	pemOnce sync.Once
	pemKey  interface{}
	pemErr  error
}

// VerifierOption is a functional option for the verifier.
type VerifierOption func(*Verifier)

// WithClockSkew sets the allowed clock skew for expiry checks.
func WithClockSkew(skew time.Duration) VerifierOption {
	return func(v *Verifier) {
		v.skew = skew
	}
}

// NewVerifier creates a verifier for the given key material. Construction
// performs no I/O and cannot fail; unusable key material surfaces as a
// signature-invalid verdict on the first Verify call that needs it.
func NewVerifier(key string, opts ...VerifierOption) *Verifier {
	v := &Verifier{key: key}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify checks token against the verifier's key, constrained to exactly
// the given algorithm. Tokens declaring a different algorithm fail
// verification; "none" is honoured only when alg is None.
func (v *Verifier) Verify(token string, alg Algorithm) Result {
	if strings.Count(token, ".") != 2 {
		return Result{Verdict: VerdictMalformed, Message: "token is not a compact JWS"}
	}

	opts := []jwt.ParseOption{
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(v.skew),
	}
	if alg == None {
		opts = append(opts, jwt.WithVerify(false))
	} else {
		key, err := v.keyFor(alg)
		if err != nil {
			return Result{
				Verdict: VerdictSignatureInvalid,
				Message: fmt.Sprintf("verification key unusable for %s: %v", alg, err),
			}
		}
		opts = append(opts, jwt.WithKey(alg.signature(), key))
	}

	if _, err := jwt.Parse([]byte(token), opts...); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired()) {
			return Result{Verdict: VerdictExpired, Message: err.Error()}
		}
		return Result{Verdict: VerdictSignatureInvalid, Message: err.Error()}
	}

	payload, err := decodePayload(token)
	if err != nil {
		return Result{Verdict: VerdictMalformed, Message: err.Error()}
	}

	return Result{Verdict: VerdictOK, Payload: payload}
}

// keyFor resolves the key material for the given algorithm family.
func (v *Verifier) keyFor(alg Algorithm) (interface{}, error) {
	if alg.symmetric() {
		return []byte(v.key), nil
	}

	raw, err := v.parsePEM()
	if err != nil {
		return nil, err
	}

	switch {
	case alg.rsaBased():
		key, ok := raw.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("key is not an RSA public key (got %T)", raw)
		}
		return key, nil
	case alg.ecdsaBased():
		key, ok := raw.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("key is not an ECDSA public key (got %T)", raw)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("no key material for algorithm %s", alg)
	}
}

// parsePEM parses the configured PEM block once and caches the result.
// Private keys are accepted and reduced to their public half.
func (v *Verifier) parsePEM() (interface{}, error) {
	v.pemOnce.Do(func() {
		key, err := jwk.ParseKey([]byte(v.key), jwk.WithPEM(true))
		if err != nil {
			v.pemErr = fmt.Errorf("failed to parse PEM key: %w", err)
			return
		}

		var raw interface{}
		if err := key.Raw(&raw); err != nil {
			v.pemErr = fmt.Errorf("failed to materialize key: %w", err)
			return
		}

		switch k := raw.(type) {
		case *rsa.PrivateKey:
			raw = &k.PublicKey
		case *ecdsa.PrivateKey:
			raw = &k.PublicKey
		}

		v.pemKey = raw
	})
	return v.pemKey, v.pemErr
}

// decodePayload extracts the raw claims JSON from a compact token.
func decodePayload(token string) ([]byte, error) {
	parts := strings.SplitN(token, ".", 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return payload, nil
}
