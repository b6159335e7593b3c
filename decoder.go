package authinfo

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/edgekit/authinfo/authctx"
	"github.com/edgekit/authinfo/observability"
	"github.com/edgekit/authinfo/token"
)

// DefaultHeaderName is the base name of the auth headers when none is
// configured.
const DefaultHeaderName = "x-auth-info"

// Suffixes of the auxiliary headers, relative to the base name.
const (
	signedSuffix    = "-signed"
	algorithmSuffix = "-algorithm"
)

// HeaderGetter is the capability a request must expose for decoding: a
// case-insensitive header lookup returning "" for absent headers.
// http.Header satisfies it.
type HeaderGetter interface {
	Get(name string) string
}

// Decoder decodes and validates the gateway auth headers of a request.
// It is immutable after construction and safe for concurrent use.
type Decoder struct {
	verifier *token.Verifier
	header   string
	logger   observability.Logger
	metrics  *Metrics
}

// Option is a functional option for the decoder.
type Option func(*options)

type options struct {
	header  string
	skew    time.Duration
	logger  observability.Logger
	metrics *Metrics
}

// WithHeaderName sets the base header name. The auxiliary headers derive
// from it as <name>-signed and <name>-algorithm.
func WithHeaderName(name string) Option {
	return func(o *options) {
		o.header = name
	}
}

// WithClockSkew sets the allowed clock skew for token expiry checks.
func WithClockSkew(skew time.Duration) Option {
	return func(o *options) {
		o.skew = skew
	}
}

// WithLogger sets the logger for the decoder.
func WithLogger(logger observability.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics for the decoder.
func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// New creates a decoder for the given verification key: a PEM public key
// for asymmetric algorithms or the shared secret for HMAC algorithms.
// Construction performs no I/O and cannot fail.
func New(verificationKey string, opts ...Option) *Decoder {
	o := &options{
		header: DefaultHeaderName,
		logger: observability.NopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil {
		o.metrics = GetSharedMetrics()
	}

	return &Decoder{
		verifier: token.NewVerifier(verificationKey, token.WithClockSkew(o.skew)),
		header:   o.header,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// HeaderName returns the configured base header name.
func (d *Decoder) HeaderName() string {
	return d.header
}

// Decode reads the auth headers from h, validates them, and returns the
// decoded auth context. Every failure is reported through the returned
// error, never a panic; typed failures are *Error values carrying a status
// and subcode, except that in unsigned mode a payload that is not valid
// JSON propagates as the raw parse error.
//
// The checks run in a fixed order: the -signed header, then the -algorithm
// header, then presence of the primary header, then verification. Malformed
// auxiliary headers are therefore reported even when the primary header is
// also missing.
func (d *Decoder) Decode(h HeaderGetter) (*authctx.Context, error) {
	start := time.Now()

	signed := true
	switch v := h.Get(d.header + signedSuffix); v {
	case "", "1":
	case "0":
		signed = false
	default:
		err := badSignedHeader(d.header, v)
		d.metrics.RecordDecode("bad_signed_header", "unknown", time.Since(start))
		return nil, err
	}

	algName := h.Get(d.header + algorithmSuffix)
	if algName == "" {
		algName = token.ES256.String()
	}
	alg, ok := token.ParseAlgorithm(algName)
	if !ok {
		d.metrics.RecordDecode("unsupported_algorithm", "unknown", time.Since(start))
		return nil, unsupportedAlgorithm(algName, token.AlgorithmNames())
	}

	raw := h.Get(d.header)
	if strings.TrimSpace(raw) == "" {
		d.metrics.RecordDecode("missing_header", alg.String(), time.Since(start))
		return nil, missingHeader(d.header)
	}

	if !signed {
		var ac authctx.Context
		if err := json.Unmarshal([]byte(raw), &ac); err != nil {
			// Unsigned payloads that are not valid JSON propagate the raw
			// parse error, without a subcode.
			d.metrics.RecordDecode("invalid_json", alg.String(), time.Since(start))
			return nil, err
		}
		d.metrics.RecordDecode("success", "unsigned", time.Since(start))
		d.logger.Debug("auth header decoded",
			observability.String("client_id", ac.ClientID),
			observability.Bool("signed", false),
		)
		return &ac, nil
	}

	res := d.verifier.Verify(raw, alg)
	switch res.Verdict {
	case token.VerdictOK:
	case token.VerdictExpired:
		d.metrics.RecordDecode("expired", alg.String(), time.Since(start))
		return nil, expiredToken(res.Message)
	default:
		d.metrics.RecordDecode("invalid_token", alg.String(), time.Since(start))
		return nil, invalidToken(res.Message)
	}

	var ac authctx.Context
	if err := json.Unmarshal(res.Payload, &ac); err != nil {
		d.metrics.RecordDecode("invalid_token", alg.String(), time.Since(start))
		return nil, invalidToken("token payload does not decode: " + err.Error())
	}

	d.metrics.RecordDecode("success", alg.String(), time.Since(start))
	d.logger.Debug("auth header decoded",
		observability.String("client_id", ac.ClientID),
		observability.String("algorithm", alg.String()),
		observability.Bool("signed", true),
	)
	return &ac, nil
}
