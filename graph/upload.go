package graph

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"
)

const (
	// uploadRangeGranularity is the API's fragment-size requirement: every
	// chunk except the last must be a multiple of 320 KiB.
	uploadRangeGranularity = 320 * 1024

	// DefaultChunkSize is ten fragments per chunk request.
	DefaultChunkSize = 10 * uploadRangeGranularity

	// chunkRequestTimeout bounds a single chunk PUT.
	chunkRequestTimeout = 120 * time.Second

	// maxChunkRetries is how many backoff retries a chunk gets after a 5xx
	// before the upload is abandoned.
	maxChunkRetries = 4

	// defaultRetryAfter is used when a 429 response omits the Retry-After
	// header.
	defaultRetryAfter = time.Second
)

// UploadSession is a server-side resumable upload context. The URL is an
// opaque, pre-authorized handle; the session is invalidated server-side if
// a chunk request comes back 404.
type UploadSession struct {
	// Path is the drive-absolute destination path.
	Path string

	// URL is the upload handle returned by createUploadSession.
	URL string

	// Size is the total payload size in bytes.
	Size int64
}

// chunkOutcome classifies one chunk response. Exactly one outcome applies
// to any response; the branches of classifyChunkStatus are evaluated in
// priority order.
type chunkOutcome int

const (
	// chunkContinue: non-final chunk accepted, send the next range.
	chunkContinue chunkOutcome = iota

	// chunkComplete: final chunk accepted, the item is committed.
	chunkComplete

	// chunkRetryAfter: rate limited; wait Retry-After then re-send the same
	// range. Not bounded by the retry budget.
	chunkRetryAfter

	// chunkRetryBackoff: server error; re-send the same range after
	// exponential backoff, bounded by maxChunkRetries.
	chunkRetryBackoff

	// chunkExpired: the session is gone. A new session is required.
	chunkExpired

	// chunkConflict: an item already exists at the destination (final chunk
	// only).
	chunkConflict

	// chunkUnexpected: a status the protocol does not define for this
	// chunk's position.
	chunkUnexpected
)

// classifyChunkStatus maps an HTTP status to the protocol outcome for a
// chunk, where final marks the chunk whose last byte ends the payload.
func classifyChunkStatus(status int, final bool) chunkOutcome {
	switch {
	case status == http.StatusNotFound:
		return chunkExpired
	case status == http.StatusTooManyRequests:
		return chunkRetryAfter
	case status >= 500:
		return chunkRetryBackoff
	case final && status == http.StatusConflict:
		return chunkConflict
	case final && status >= 200 && status < 500:
		return chunkComplete
	case status == http.StatusAccepted:
		return chunkContinue
	default:
		return chunkUnexpected
	}
}

// byteRange is one contiguous slice of the payload.
type byteRange struct {
	start int64
	end   int64
	data  []byte
}

func (r byteRange) contentRange(total int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.start, r.end, total)
}

func (r byteRange) final(total int64) bool {
	return r.end == total-1
}

// BeginUpload creates an upload session for the file at name, creating the
// parent folder chain first. Callers stream the payload into the session
// with UploadFromSession.
func (c *Client) BeginUpload(ctx context.Context, name string, size int64) (*UploadSession, error) {
	dir := path.Dir(name)
	leaf := path.Base(name)

	parent, err := c.EnsureFolder(ctx, dir)
	if err != nil {
		var ge *Error
		if errors.As(err, &ge) && ge.Kind == KindFolderUnavailable {
			return nil, err
		}
		return nil, &Error{Kind: KindFolderUnavailable, Op: "BeginUpload", Path: dir, Err: err}
	}

	sessionURL := c.base + "/" + c.drive + "/items/" + parent.ID + ":" + escapePath("/"+leaf) + ":/createUploadSession"
	body := map[string]any{
		"item": map[string]any{
			"@microsoft.graph.conflictBehavior": "replace",
			"name":                              leaf,
		},
	}

	var created sessionResponse
	if err := c.doJSON(ctx, "BeginUpload", http.MethodPost, sessionURL, body, &created); err != nil {
		return nil, err
	}
	if created.UploadURL == "" {
		return nil, &Error{Kind: KindSessionCreationFailed, Op: "BeginUpload", Path: name,
			Err: errors.New("response carries no uploadUrl")}
	}

	return &UploadSession{Path: name, URL: created.UploadURL, Size: size}, nil
}

// UploadFromSession streams content into session as ordered byte-range
// chunks. Chunks are strictly sequential: the session tracks a single
// expected next offset, so a range is only advanced past once the server
// acknowledges it. A zero-size payload completes without issuing any chunk
// request.
func (c *Client) UploadFromSession(ctx context.Context, session *UploadSession, content io.Reader) error {
	if session.Size == 0 {
		return nil
	}

	buf := make([]byte, c.chunkSize)
	var offset int64

	for offset < session.Size {
		want := c.chunkSize
		if remaining := session.Size - offset; remaining < want {
			want = remaining
		}

		n, err := io.ReadFull(content, buf[:want])
		if err != nil {
			return &Error{Kind: KindSourceUnreadable, Op: "UploadFromSession", Path: session.Path,
				RangeStart: offset, Err: err}
		}

		chunk := byteRange{start: offset, end: offset + int64(n) - 1, data: buf[:n]}
		done, err := c.sendChunk(ctx, session, chunk)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		offset += int64(n)
	}

	// Every range was sent and acknowledged, yet the final chunk never
	// produced a completion.
	return &Error{Kind: KindUnexpectedStatus, Op: "UploadFromSession", Path: session.Path,
		Err: errors.New("session accepted all ranges without completing")}
}

// sendChunk PUTs one byte range, retrying transient failures in place.
// done reports that the remote committed the item. Retry is an explicit
// bounded loop so the attempt cap is auditable: 429 waits Retry-After and
// re-sends without bound, 5xx backs off exponentially up to
// maxChunkRetries past the original request. Both re-send the identical
// byte range. All other non-success statuses are terminal.
func (c *Client) sendChunk(ctx context.Context, session *UploadSession, chunk byteRange) (done bool, err error) {
	final := chunk.final(session.Size)

	for attempt := 0; ; {
		status, retryAfter, err := c.putChunk(ctx, session, chunk)
		if err != nil {
			return false, err
		}

		switch classifyChunkStatus(status, final) {
		case chunkContinue:
			return false, nil

		case chunkComplete:
			return true, nil

		case chunkRetryAfter:
			c.sleep(retryAfterDelay(retryAfter))
			attempt++

		case chunkRetryBackoff:
			if attempt >= maxChunkRetries {
				return false, &Error{Kind: KindRetryBudgetExceeded, Op: "sendChunk", Path: session.Path,
					Status: status, RangeStart: chunk.start, RangeEnd: chunk.end, Attempt: attempt,
					Err: fmt.Errorf("chunk failed %d times", attempt+1)}
			}
			c.sleep(time.Duration(1<<attempt) * time.Second)
			attempt++

		case chunkExpired:
			return false, &Error{Kind: KindSessionExpired, Op: "sendChunk", Path: session.Path,
				Status: status, RangeStart: chunk.start, RangeEnd: chunk.end, Attempt: attempt}

		case chunkConflict:
			return false, &Error{Kind: KindNameConflict, Op: "sendChunk", Path: session.Path,
				Status: status, RangeStart: chunk.start, RangeEnd: chunk.end, Attempt: attempt}

		default:
			return false, &Error{Kind: KindUnexpectedStatus, Op: "sendChunk", Path: session.Path,
				Status: status, RangeStart: chunk.start, RangeEnd: chunk.end, Attempt: attempt}
		}
	}
}

// putChunk issues a single chunk PUT and returns its status code along
// with any Retry-After header value.
func (c *Client) putChunk(ctx context.Context, session *UploadSession, chunk byteRange) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, session.URL, bytes.NewReader(chunk.data))
	if err != nil {
		return 0, "", &Error{Kind: KindRequestFailed, Op: "sendChunk", Path: session.Path,
			RangeStart: chunk.start, RangeEnd: chunk.end, Err: err}
	}
	req.ContentLength = int64(len(chunk.data))
	req.Header.Set("Content-Range", chunk.contentRange(session.Size))

	resp, err := c.upload.Do(req)
	if err != nil {
		return 0, "", &Error{Kind: KindRequestFailed, Op: "sendChunk", Path: session.Path,
			RangeStart: chunk.start, RangeEnd: chunk.end, Err: err}
	}
	defer drainBody(resp)

	return resp.StatusCode, resp.Header.Get("Retry-After"), nil
}

// retryAfterDelay parses a Retry-After header value in seconds, falling
// back to defaultRetryAfter when absent or malformed.
func retryAfterDelay(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
