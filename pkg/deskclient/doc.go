// Package deskclient provides the primary entry point for constructing a
// helpdesk API client that implements the desk.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the desk package. Most
// applications should import deskclient to build a client, then use the
// returned desk.Client to access resource-specific clients, for example
// Tags(), Tickets(), NPS(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/helpwire-io/deskapi/pkg/desk"
//	  "github.com/helpwire-io/deskapi/pkg/deskclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Subdomain plus email/API token is the most common setup.
//	  cli, err := deskclient.New(ctx, &desk.Config{
//	    Subdomain: "acme",
//	    Email:     "agent@acme.example",
//	    APIToken:  "token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an OAuth access token you already have:
//	  cli, err = deskclient.New(ctx, &desk.Config{
//	    Subdomain:  "acme",
//	    OAuthToken: "eyJhbGciOi...", // bearer token
//	  })
//
//	  // Or with username/password; a token is obtained via the OAuth
//	  // password grant against the account's token endpoint.
//	  cli, err = deskclient.New(ctx, &desk.Config{
//	    Subdomain: "acme",
//	    Username:  "agent@acme.example",
//	    Password:  "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the desk.Client interface
//	  tags, err := cli.Tags().List(ctx, desk.NewQueryParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = tags
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIToken,
// NewWithOAuthToken, and NewWithPassword that wrap New with the appropriate
// configuration.
package deskclient
