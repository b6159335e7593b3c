// Package authinfo decodes and validates the signed authentication
// context an upstream gateway forwards in a single HTTP header, and
// exposes the decoded claims to downstream handlers.
//
// Three related headers make up the wire contract, with a configurable
// base name (default "x-auth-info"):
//
//   - <name>: a compact signed token, or a raw JSON object when unsigned
//   - <name>-signed: "1" (default) or "0"
//   - <name>-algorithm: a supported JWS algorithm name, default ES256
//
// # Decoding
//
// A Decoder is built once from a verification key and reused across
// requests:
//
//	dec := authinfo.New(publicKeyPEM)
//	ctx, err := dec.Decode(r.Header)
//	if err != nil {
//	    var de *authinfo.Error
//	    if errors.As(err, &de) {
//	        // de.Status, de.Subcode, de.Message
//	    }
//	}
//
// Every failure maps to a stable subcode with an HTTP-equivalent status,
// so callers can branch without parsing messages. Verification is pinned
// to exactly the algorithm resolved from the request headers.
//
// # Middleware
//
// For net/http chains, Middleware attaches the decoded context to the
// request context and writes typed failures as JSON:
//
//	mux := http.NewServeMux()
//	handler := dec.Middleware()(mux)
//
//	// downstream
//	ac, ok := authinfo.AuthFromContext(r.Context())
//
// The package never issues or signs tokens, never manages keys, and makes
// no authorization decisions.
package authinfo
