// Package github loads documentation files from a GitHub repository.
//
// The source lists the repository tree once per load and fetches each
// supported blob under the configured docs path. Requests are throttled
// proactively and back off when the API reports a nearly exhausted quota.
package github
