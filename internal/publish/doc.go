// Package publish uploads a static gallery snapshot to an S3-compatible
// object store.
//
// The snapshot is the preview page without its client script, so the
// widgets render in their initial state. Credentials are read from the
// standard AWS environment variables:
//
//	AWS_ACCESS_KEY_ID
//	AWS_SECRET_ACCESS_KEY
//	AWS_SESSION_TOKEN (optional)
package publish
