package downloader

import "fmt"

// DownloadError reports a failed video fetch: unreachable locator, private or
// restricted resource, no stream matching the quality constraint, or a missing
// yt-dlp binary.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
