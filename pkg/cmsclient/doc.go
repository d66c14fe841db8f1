// Package cmsclient provides the primary entry point for constructing a
// CMS API data context that implements the cms.DataContext interface.
//
// It layers host normalization, HTTP transport, and credential header
// authentication on top of the query and response capabilities defined in
// the cms package. Most applications should import cmsclient to build a
// context, then issue queries through the returned cms.DataContext.
//
// Quick start
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
//
//	  // Minimal: just a host (read-only queries).
//	  dc, err := cmsclient.New(&cms.Config{Host: "https://cms.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with credentials, enabling create and update queries:
//	  dc, err = cmsclient.New(&cms.Config{
//	    Host:     "https://cms.example.com",
//	    Username: "user",
//	    Password: "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  var item cms.ContentItem
//	  err = dc.GetResponse(ctx, cms.NewContentGetQuery(42, cms.FormatJSON), &item)
//	  if err != nil { log.Fatal(err) }
//	  _ = item
//	}
//
// # Encrypted headers
//
// On plain-http hosts, Config.EncryptHeaders (or NewWithEncryptedHeaders)
// encrypts the credential headers with an RSA public key fetched from the
// server. The combination of encrypted headers and an https host is
// rejected at construction, since TLS already protects the headers.
//
// # Helpers
//
// The package also provides convenience constructors NewWithHost,
// NewWithCredentials, and NewWithEncryptedHeaders that wrap New with the
// appropriate configuration.
package cmsclient
