// Package token verifies compact signed tokens against a single key and
// a single caller-resolved algorithm.
//
// Verification never returns an error across the package boundary; it
// produces a tagged Result whose Verdict distinguishes a verified token
// from a malformed value, a signature failure, and an expired token:
//
//	v := token.NewVerifier(publicKeyPEM)
//	res := v.Verify(raw, token.ES256)
//	switch res.Verdict {
//	case token.VerdictOK:
//	    // res.Payload holds the claims JSON
//	case token.VerdictExpired:
//	    // verified but aged out
//	default:
//	    // res.Message explains the rejection
//	}
//
// The verifier is pinned to exactly one algorithm per call, never a list
// of acceptable algorithms, which closes the algorithm-confusion attack
// surface. The "none" algorithm is honoured only when the caller resolves
// it explicitly.
package token
