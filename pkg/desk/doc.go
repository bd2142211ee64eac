// Package desk provides types, interfaces, and helpers for working with
// helpdesk platform APIs.
//
// # Overview
//
// The desk package defines the domain types (e.g., Tag, TicketField, Ticket,
// Survey, Recipient) and the interfaces for resource-oriented clients (e.g.,
// TagsClient, TicketFieldsClient). A concrete implementation of these clients
// is provided by the deskclient package, which wires configuration,
// transport, and authentication. Most consumers should import deskclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := deskclient.New(ctx, &desk.Config{
//	    Subdomain: "acme",
//	    Email:     "agent@acme.example",
//	    APIToken:  "token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of tags
//	  tags, err := cli.Tags().List(ctx, desk.NewQueryParams().WithPerPage(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = tags
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (page, per_page, cursors,
// sorting, filters). List responses carry their own next-page locator, either
// an offset next_page URL or a cursor links.next URL, and the pagination
// helpers follow whichever the server returned:
//
//	it := desk.NewPaginationIterator(ctx, client, "/api/v2/tags", desk.NewQueryParams())
//	for it.HasNext() {
//	  tag, err := it.Next()
//	  if err != nil { break }
//	  _ = tag
//	}
//
// or fetch all results at once:
//
//	all, err := desk.FetchAllPages(ctx, client, "/api/v2/tags", nil, desk.DefaultPaginationOptions())
//	if err != nil { /* handle error */ }
//	_ = all
//
// A failure on any page aborts the chain with a PaginationError; partial
// results are never returned.
//
// # Errors
//
// API errors are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common cases.
// Network failures are wrapped in TransportError, and malformed response
// bodies in DecodeError, so the three failure classes stay distinguishable.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, auth headers, metrics, rate limiting, circuit
// breaking) and a pluggable Cache abstraction with in-memory and NATS KV
// backends. The deskclient package composes these pieces for a sensible
// default client; applications with advanced needs can also use these
// primitives directly.
package desk
