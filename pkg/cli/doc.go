// Package cli implements the command-line interface for the stratus tool.
//
// # Overview
//
// The stratus CLI wraps the Google Cloud plumbing needed to run a static
// website on Cloud Storage behind an HTTPS load balancer, plus the adjacent
// chores: finding free project and bucket names, and provisioning new
// projects with billing and baseline APIs.
//
// # Commands
//
// site - Host static content in a Cloud Storage bucket:
//
//	stratus site deploy --bucket www.example.com --dir ./public --public
//
// Creates the bucket with website configuration if needed, syncs the local
// directory (unchanged files are skipped), and optionally makes the content
// world readable.
//
// lb - Manage the HTTPS load balancer in front of the bucket:
//
//	stratus lb setup --bucket www-example-com --domain example.com
//	stratus lb status --bucket www-example-com
//	stratus lb teardown --bucket www-example-com
//
// Provisions the address, managed certificate, backend bucket, URL map,
// proxy, and forwarding rule in order; teardown removes them in reverse.
//
// check - Validate name candidates and probe availability:
//
//	stratus check projects --wordlist names.txt --delay 500ms
//	stratus check buckets my-bucket-name --local-only
//
// project - Provision projects:
//
//	stratus project create my-sandbox-2026 --billing-account billingAccounts/...
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format       Output format: yaml, json, table (default: yaml)
//	--log-level    Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Missing prerequisite (gcloud binary or application default credentials)
//
// The load balancer commands shell out to the gcloud CLI; everything else
// talks to the Google Cloud APIs directly using application default
// credentials.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/stratus-tools/stratus/pkg/cli.version=1.0.0'"
package cli
