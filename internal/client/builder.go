package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/cmsapi/internal/http"
	"github.com/fivetwenty-io/cmsapi/pkg/cms"
)

// requestBuilder turns a resolved URI and query type into an outgoing
// request. The unauthenticated and authenticated contexts plug in different
// builders at construction time; both share buildBaseRequest.
type requestBuilder interface {
	// Build constructs the request. body is the serialized field map for
	// mutating queries, nil otherwise.
	Build(ctx context.Context, uri string, queryType cms.QueryType, body []byte) (*internalhttp.Request, error)
}

// buildBaseRequest is the shared base behavior: verb mapping per query type
// and an empty header set. Persistent connections are disabled by the
// transport layer.
func buildBaseRequest(uri string, queryType cms.QueryType) *internalhttp.Request {
	return &internalhttp.Request{
		Method:  queryType.Method(),
		URL:     uri,
		Headers: map[string]string{},
	}
}

// baseBuilder builds plain requests without credentials or bodies.
type baseBuilder struct{}

func (baseBuilder) Build(_ context.Context, uri string, queryType cms.QueryType, _ []byte) (*internalhttp.Request, error) {
	return buildBaseRequest(uri, queryType), nil
}
