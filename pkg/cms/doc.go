// Package cms provides types, interfaces, and helpers for working with the
// CMS remote web API.
//
// # Overview
//
// The cms package defines the query and response capabilities (Query,
// Result, Envelope, ResponseInfo), credentials, configuration, and the
// DataContext interface representing a connection to one CMS host. A
// concrete implementation is provided by the cmsclient package, which wires
// host normalization, transport, and header authentication. Most consumers
// should import cmsclient to construct a context and issue queries through
// the interfaces exposed here.
//
// Getting a context
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/cmsapi/pkg/cms"
//	  "github.com/fivetwenty-io/cmsapi/pkg/cmsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  dc, err := cmsclient.New(&cms.Config{Host: "https://cms.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  var item cms.ContentItem
//	  err = dc.GetResponse(ctx, cms.NewContentGetQuery(42, cms.FormatJSON), &item)
//	  if err != nil { log.Fatal(err) }
//	  _ = item
//	}
//
// # Errors
//
// Configuration and programming mistakes surface as returned errors
// (sentinels such as ErrInvalidHostName, ErrNilQuery). Operational
// failures — network errors, non-2xx statuses, parse failures — never do:
// they are captured into the result's Envelope, which callers inspect via
// StatusCode, StatusDescription, and ResponseInfo.
package cms
