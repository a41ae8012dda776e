// Package integrity provides health checks for the upload infrastructure.
//
// # Checks Provided
//
//   - Bucket: the configured bucket exists and objects under the key prefix can be listed.
//   - Ledger: the optional upload ledger database answers and its record count.
//   - Reconcile: ledger uploads missing from the bucket and bucket objects the ledger never saw.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/bucket : Runs the bucket check (503 when unreachable).
//   - GET /integrity/ledger : Runs the ledger check.
//   - GET /integrity/reconcile : Reconciles ledger and bucket (supports ?fresh=true).
package integrity
