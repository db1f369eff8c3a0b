// Package archive provides a client for the Internet Archive advanced search API.
//
// It covers the two requests magroulette needs: a count request that reads
// response.numFound, and a page request that returns randomly sorted
// documents restricted to a fixed field list.
//
// # Usage
//
//	client := archive.NewClient(logger,
//		archive.WithTimeout(30*time.Second),
//		archive.WithRateLimit(time.Second),
//	)
//
//	query := archive.BuildQuery(archive.Filters{Collection: "popsci", MinYear: 1975})
//	total, err := client.Count(ctx, query)
//	if err != nil {
//		return err
//	}
//	docs, err := client.Fetch(ctx, query, 1, 100)
//
// # Metadata values
//
// Document fields are loosely typed upstream: collection and subject may be a
// single string or a list, year may be a string or a number. Text and List
// normalize these once at decode time so callers never branch on the shape.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError. A count response without
// response.numFound yields ErrMissingField. Callers decide how to surface
// failures; this package never swallows them.
package archive
