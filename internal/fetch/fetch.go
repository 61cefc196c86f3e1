package fetch

import (
	"fmt"
	"io"
	"net/http"

	"github.com/VOLLPilates/assetforge/internal/utils"
)

// Error covers everything that can go wrong between the GET request
// and the last body byte: transport failures, the client timeout, and
// non-2xx responses.
type Error struct {
	URL    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetch performs a single GET attempt and returns the full response
// body. No retries; the job runner decides what a failure means.
func Fetch(client utils.HTTPDoer, url string) ([]byte, error) {
	log := utils.GetLogger("fetch")
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{URL: url, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	log.Debug().Str("url", url).Int("bytes", len(body)).Msg("Download completed")
	return body, nil
}
