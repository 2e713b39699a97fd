package downloader

import "context"

// Downloader fetches a remote video to a local file
type Downloader interface {
	Fetch(ctx context.Context, sourceURL, destPath string) error
}
