// Package linkding is a client for the linkding bookmark manager REST API.
//
// Every API call is described by an Endpoint: an Operation plus the IDs,
// filters or URL that vary per call. An Endpoint resolves to an HTTP
// method, a request URI under /api/ and a set of default headers, and the
// Client turns it into a request carrying an "Authorization: Token ..."
// header.
//
//	client, err := linkding.NewClient("https://links.example.com", token)
//	if err != nil {
//		log.Fatal(err)
//	}
//	page, err := client.ListBookmarks(ctx, linkding.ListBookmarksArgs{Limit: linkding.Int(100)})
//
// Pagination is left to the caller: advance Offset until the returned
// list's Next is nil.
//
// Every error returned by a Client method is an *Error whose Kind tells
// how the call failed. Non-2xx responses are KindTransport errors wrapping
// an *APIError. The client never retries.
package linkding
