// Package mutualsdk holds the JSON wire types of the outreach API and a small
// typed client for it.
//
// The client keeps the session cookie in a cookie jar, so a login or register
// call is all that is needed before the authenticated calls:
//
//	c, err := mutualsdk.NewClient("http://localhost:8080")
//	if err != nil {
//		return err
//	}
//	if _, err := c.Register(ctx, "jane@example.com", "correct horse battery"); err != nil {
//		return err
//	}
//	job, err := c.CreateJob(ctx, mutualsdk.CreateJobRequest{Title: "PM", Company: "TechCorp"})
//
// Non-2xx responses come back as *APIError carrying the status code, the
// error code and any per-field details.
package mutualsdk
