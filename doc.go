// Package visuallayer is the official Go SDK for the Visual Layer API.
//
// The client wraps dataset management, image-upload ingestion, and the
// asynchronous search workflow: a query is submitted as a job, polled
// until it reaches a terminal state, and its export payload is
// materialized into a tabular ResultSet.
//
//	c, err := visuallayer.New(
//		visuallayer.WithCredentials(apiKey, apiSecret),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rs, err := c.Search(datasetID).ByCaptions(ctx, visuallayer.EntityImages, "cat", "sitting", "outdoors")
//
// FAILED and TIMED_OUT jobs are reported as data rather than errors;
// materializing them yields an empty ResultSet.
package visuallayer
