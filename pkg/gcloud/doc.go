// Package gcloud wraps the Google Cloud SDK command line tool.
//
// # Overview
//
// The compute resources this project provisions (global addresses, managed
// SSL certificates, backend buckets, URL maps, proxies, forwarding rules) are
// driven through the gcloud binary rather than API clients: the tool mirrors
// the operational workflows it automates, and describe/create/delete through
// gcloud keeps parity with what an operator would run by hand.
//
// The package provides:
//
//   - Runner: a minimal interface for executing gcloud with arguments,
//     satisfied by the production exec-based runner and by test fakes
//   - Client: describe/create/delete helpers that inject --project,
//     --format=json and --quiet, decode JSON output, and classify failures
//
// # Error Classification
//
// gcloud reports failures through its exit status and stderr. The client
// maps those onto the structured error codes in pkg/errors so callers can
// implement describe-then-create idempotency:
//
//	if _, err := client.Describe(ctx, "compute", "addresses", "describe", name, "--global"); err != nil {
//	    if errors.Is(err, errors.ErrCodeNotFound) {
//	        // safe to create
//	    }
//	}
//
// A missing gcloud binary is reported as ErrCodePrerequisite, which the CLI
// maps to exit status 2.
package gcloud
