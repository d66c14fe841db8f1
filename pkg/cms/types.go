package cms

import (
	"net/url"
	"strings"
	"time"
)

// QueryType identifies the kind of API operation a query performs.
type QueryType int

const (
	// QueryTypeRead fetches a resource without modifying it.
	QueryTypeRead QueryType = iota

	// QueryTypeCreate creates a new resource and requires authentication.
	QueryTypeCreate

	// QueryTypeUpdate modifies an existing resource and requires authentication.
	QueryTypeUpdate

	// QueryTypeDelete removes a resource.
	QueryTypeDelete
)

// Method returns the HTTP verb used on the wire for this query type.
func (t QueryType) Method() string {
	switch t {
	case QueryTypeCreate:
		return "POST"
	case QueryTypeUpdate:
		return "PUT"
	case QueryTypeDelete:
		return "DELETE"
	case QueryTypeRead:
		return "GET"
	default:
		return "GET"
	}
}

// String returns the query type name.
func (t QueryType) String() string {
	switch t {
	case QueryTypeRead:
		return "read"
	case QueryTypeCreate:
		return "create"
	case QueryTypeUpdate:
		return "update"
	case QueryTypeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// IsMutating reports whether the query type carries a request body and
// therefore requires an authenticated context.
func (t QueryType) IsMutating() bool {
	return t == QueryTypeCreate || t == QueryTypeUpdate
}

// ResponseFormat selects the wire format the server is asked to produce.
type ResponseFormat string

const (
	// FormatJSON requests a JSON response body.
	FormatJSON ResponseFormat = "json"

	// FormatXML requests an XML response body.
	FormatXML ResponseFormat = "xml"
)

// Query describes one API operation: its type, the target URI on a given
// host, the desired response format, and (for mutating types) the field
// values serialized as the request body.
type Query interface {
	// Type returns the query type, which determines the HTTP verb and
	// whether a body is sent.
	Type() QueryType

	// URI builds the full target URI for the given scheme-prefixed host.
	URI(host string) string

	// Format returns the response format the server should produce.
	Format() ResponseFormat

	// Fields returns the field-to-value mapping serialized as the request
	// body for Create and Update queries. May be nil for read queries.
	Fields() url.Values
}

// ActionQuery is a Query addressed by a server action name. The target URI
// is "<host>/api/<action>?format=<format>".
type ActionQuery struct {
	Action      string
	QueryType   QueryType
	Response    ResponseFormat
	FieldValues url.Values
}

// Type implements Query.
func (q *ActionQuery) Type() QueryType { return q.QueryType }

// URI implements Query. Field values ride in the query string for
// non-mutating types; mutating types carry them in the request body.
func (q *ActionQuery) URI(host string) string {
	uri := strings.TrimSuffix(host, "/") + "/api/" + q.Action + "?format=" + string(q.Format())

	if !q.QueryType.IsMutating() && len(q.FieldValues) > 0 {
		uri += "&" + q.FieldValues.Encode()
	}

	return uri
}

// Format implements Query. JSON is the default when unset.
func (q *ActionQuery) Format() ResponseFormat {
	if q.Response == "" {
		return FormatJSON
	}

	return q.Response
}

// Fields implements Query.
func (q *ActionQuery) Fields() url.Values { return q.FieldValues }

// ResponseInfo is the metadata block attached to every result, populated
// on success and failure alike.
type ResponseInfo struct {
	// URI is the fully resolved request URI.
	URI string `json:"-" xml:"-" yaml:"-"`

	// Elapsed is the wall-clock time from dispatch to body-read completion.
	Elapsed time.Duration `json:"-" xml:"-" yaml:"-"`

	// ErrorMessage holds the failure description for operational errors.
	ErrorMessage string `json:"-" xml:"-" yaml:"-"`

	// StackTrace holds the call stack captured when the failure was mapped.
	StackTrace string `json:"-" xml:"-" yaml:"-"`
}

// Result is the capability every response container exposes so the data
// context can record the call outcome on it.
type Result interface {
	// SetStatus records the HTTP status code and description.
	SetStatus(code int, description string)

	// Info returns the settable response metadata block.
	Info() *ResponseInfo
}

// Envelope carries the call outcome for a response type. Embed it in a
// response struct to satisfy Result. Its fields are excluded from body
// decoding; only the data context writes them.
type Envelope struct {
	StatusCode        int          `json:"-" xml:"-" yaml:"-"`
	StatusDescription string       `json:"-" xml:"-" yaml:"-"`
	ResponseInfo      ResponseInfo `json:"-" xml:"-" yaml:"-"`
}

// SetStatus implements Result.
func (e *Envelope) SetStatus(code int, description string) {
	e.StatusCode = code
	e.StatusDescription = description
}

// Info implements Result.
func (e *Envelope) Info() *ResponseInfo {
	return &e.ResponseInfo
}

// OK reports whether the call completed with a 2xx status.
func (e *Envelope) OK() bool {
	return e.StatusCode >= 200 && e.StatusCode < 300
}

// PublicKeyResponse holds the RSA public key material returned by the
// server's getpublickey action. Modulus and Exponent are opaque strings;
// their byte representation is the wire contract with the server.
type PublicKeyResponse struct {
	Envelope

	Modulus  string `json:"modulus"  xml:"modulus"  yaml:"modulus"`
	Exponent string `json:"exponent" xml:"exponent" yaml:"exponent"`
}

// IsValid reports whether the response carries usable key material.
func (r *PublicKeyResponse) IsValid() bool {
	return r != nil && r.Modulus != "" && r.Exponent != ""
}
