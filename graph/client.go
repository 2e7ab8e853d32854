// Package graph is a minimal, hand-rolled client for the Microsoft Graph
// drive endpoints, covering exactly the surface the OneDrive vfs backend
// needs: item metadata, folder management, downloads, direct uploads, and
// the resumable chunked-upload protocol.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// DefaultBaseURL is the production Microsoft Graph endpoint.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// defaultDrive addresses the signed-in user's default drive.
const defaultDrive = "me/drive"

// copyPollInterval is the delay between monitor polls for async copies.
const copyPollInterval = 500 * time.Millisecond

// Client talks to the Graph drive API. The api transport carries
// authentication and is used for every metadata, session-creation, and
// download call. Chunk PUTs go through a separate bare transport because
// upload session URLs are pre-authorized and reject requests that carry an
// Authorization header.
type Client struct {
	api       *http.Client
	upload    *http.Client
	base      string
	drive     string
	chunkSize int64
	sleep     func(time.Duration)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the Graph endpoint, e.g. for sovereign clouds or
// test servers.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.base = strings.TrimSuffix(base, "/") }
}

// WithDrive addresses a drive other than the default, e.g. "drives/{id}"
// or "sites/{id}/drive".
func WithDrive(drive string) ClientOption {
	return func(c *Client) { c.drive = strings.Trim(drive, "/") }
}

// WithChunkSize sets the upload fragment size. Values are rounded down to
// the nearest multiple of the 320 KiB granularity the API requires;
// anything smaller than one fragment uses a single fragment.
func WithChunkSize(size int64) ClientOption {
	return func(c *Client) {
		if size < uploadRangeGranularity {
			size = uploadRangeGranularity
		}
		c.chunkSize = size - size%uploadRangeGranularity
	}
}

// WithChunkTransport replaces the transport used for chunk PUTs and other
// pre-authorized URLs. Intended for tests.
func WithChunkTransport(hc *http.Client) ClientOption {
	return func(c *Client) { c.upload = hc }
}

// NewClient returns a drive client using api for authenticated calls.
func NewClient(api *http.Client, opts ...ClientOption) *Client {
	if api == nil {
		api = http.DefaultClient
	}

	c := &Client{
		api:       api,
		upload:    &http.Client{Timeout: chunkRequestTimeout},
		base:      DefaultBaseURL,
		drive:     defaultDrive,
		chunkSize: DefaultChunkSize,
		sleep:     time.Sleep,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// itemURL builds the URL addressing name (a drive-absolute path), with an
// optional action segment such as "children" or "content".
func (c *Client) itemURL(name, action string) string {
	name = strings.TrimSuffix(name, "/")

	if name == "" || name == "/" {
		u := c.base + "/" + c.drive + "/root"
		if action != "" {
			u += "/" + action
		}
		return u
	}

	u := c.base + "/" + c.drive + "/root:" + escapePath(name)
	if action != "" {
		u += ":/" + action
	}
	return u
}

func escapePath(name string) string {
	return (&url.URL{Path: name}).EscapedPath()
}

// do issues one authenticated request. A transport-level failure (no HTTP
// status at all) becomes a KindRequestFailed error.
func (c *Client) do(ctx context.Context, op, method, u string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Kind: KindRequestFailed, Op: op, Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindRequestFailed, Op: op, Err: err}
	}
	return resp, nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, op, method, u string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindRequestFailed, Op: op, Err: err}
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, op, method, u, body, contentType)
	if err != nil {
		return err
	}
	defer drainBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindRequestFailed, Op: op, Status: resp.StatusCode, Err: err}
		}
	}
	return nil
}

// statusError converts a non-2xx response into a tagged error, preserving
// the OData error message when the body carries one.
func statusError(op string, resp *http.Response) error {
	kind := KindUnexpectedStatus
	if resp.StatusCode == http.StatusNotFound {
		kind = KindNotFound
	}

	var cause error
	var envelope oDataError
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
		cause = fmt.Errorf("%s: %s", envelope.Error.Code, envelope.Error.Message)
	}

	return &Error{Kind: kind, Op: op, Status: resp.StatusCode, Err: cause}
}

func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// ItemByPath returns the metadata for the item at name.
func (c *Client) ItemByPath(ctx context.Context, name string) (*Item, error) {
	var item Item
	if err := c.doJSON(ctx, "ItemByPath", http.MethodGet, c.itemURL(name, ""), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Children lists the items directly under name, following pagination.
func (c *Client) Children(ctx context.Context, name string) ([]Item, error) {
	next := c.itemURL(name, "children")

	var all []Item
	for next != "" {
		var page itemList
		if err := c.doJSON(ctx, "Children", http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Value...)
		next = page.NextLink
	}
	return all, nil
}

// CreateFolder creates a folder called name under parent. It fails with a
// conflict if an item of that name already exists.
func (c *Client) CreateFolder(ctx context.Context, parent, name string) (*Item, error) {
	body := map[string]any{
		"name":                              name,
		"folder":                            FolderFacet{},
		"@microsoft.graph.conflictBehavior": "fail",
	}

	var item Item
	if err := c.doJSON(ctx, "CreateFolder", http.MethodPost, c.itemURL(parent, "children"), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// EnsureFolder resolves the folder at name, creating any missing path
// segments along the way. It is idempotent: existing folders are reused.
func (c *Client) EnsureFolder(ctx context.Context, name string) (*Item, error) {
	name = strings.Trim(name, "/")
	if name == "" || name == "." {
		return c.ItemByPath(ctx, "/")
	}

	current := "/"
	var item *Item
	for _, segment := range strings.Split(name, "/") {
		full := path.Join(current, segment)

		found, err := c.ItemByPath(ctx, full)
		switch {
		case err == nil:
			if !found.IsFolder() {
				return nil, &Error{Kind: KindFolderUnavailable, Op: "EnsureFolder", Path: full,
					Err: errors.New("an item of that name exists and is not a folder")}
			}
			item = found
		case IsNotFound(err):
			created, cerr := c.CreateFolder(ctx, current, segment)
			if cerr != nil {
				// Lost a creation race; resolve whatever is there now.
				if kind, ok := KindOf(cerr); ok && kind == KindUnexpectedStatus {
					if refetched, rerr := c.ItemByPath(ctx, full); rerr == nil && refetched.IsFolder() {
						item = refetched
						current = full
						continue
					}
				}
				return nil, &Error{Kind: KindFolderUnavailable, Op: "EnsureFolder", Path: full, Err: cerr}
			}
			item = created
		default:
			return nil, &Error{Kind: KindFolderUnavailable, Op: "EnsureFolder", Path: full, Err: err}
		}

		current = full
	}

	return item, nil
}

// SimpleUpload writes content in a single direct PUT. The API caps this
// path at 4 MiB; larger payloads must use an upload session.
func (c *Client) SimpleUpload(ctx context.Context, name string, content io.Reader, size int64, contentType string) (*Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.itemURL(name, "content"), content)
	if err != nil {
		return nil, &Error{Kind: KindRequestFailed, Op: "SimpleUpload", Path: name, Err: err}
	}
	req.ContentLength = size
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindRequestFailed, Op: "SimpleUpload", Path: name, Err: err}
	}
	defer drainBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError("SimpleUpload", resp)
	}

	var item Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, &Error{Kind: KindRequestFailed, Op: "SimpleUpload", Path: name, Err: err}
	}
	return &item, nil
}

// Download opens a stream of the file's content. The item's pre-authorized
// download URL is resolved first, then fetched without auth headers.
func (c *Client) Download(ctx context.Context, name string) (io.ReadCloser, error) {
	item, err := c.ItemByPath(ctx, name)
	if err != nil {
		return nil, err
	}
	if item.IsFolder() {
		return nil, &Error{Kind: KindUnexpectedStatus, Op: "Download", Path: name,
			Err: errors.New("cannot download a folder")}
	}
	if item.DownloadURL == "" {
		return nil, &Error{Kind: KindUnexpectedStatus, Op: "Download", Path: name,
			Err: errors.New("item has no download URL")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.DownloadURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindRequestFailed, Op: "Download", Path: name, Err: err}
	}

	resp, err := c.upload.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindRequestFailed, Op: "Download", Path: name, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer drainBody(resp)
		return nil, statusError("Download", resp)
	}

	return resp.Body, nil
}

// Delete removes the item at name.
func (c *Client) Delete(ctx context.Context, name string) error {
	resp, err := c.do(ctx, "Delete", http.MethodDelete, c.itemURL(name, ""), nil, "")
	if err != nil {
		return err
	}
	defer drainBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError("Delete", resp)
	}
	return nil
}

// Move relocates and/or renames the item at from so it ends up at to.
func (c *Client) Move(ctx context.Context, from, to string) (*Item, error) {
	body := map[string]any{
		"name":            path.Base(to),
		"parentReference": ParentRef{Path: driveRootPath(path.Dir(to))},
	}

	var item Item
	if err := c.doJSON(ctx, "Move", http.MethodPatch, c.itemURL(from, ""), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Copy duplicates the item at from to the path to. The API runs copies
// asynchronously; Copy blocks, polling the returned monitor URL, until the
// operation completes or fails.
func (c *Client) Copy(ctx context.Context, from, to string) error {
	body := map[string]any{
		"name":            path.Base(to),
		"parentReference": ParentRef{Path: driveRootPath(path.Dir(to))},
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindRequestFailed, Op: "Copy", Path: from, Err: err}
	}

	resp, err := c.do(ctx, "Copy", http.MethodPost, c.itemURL(from, "copy"), bytes.NewReader(encoded), "application/json")
	if err != nil {
		return err
	}
	defer drainBody(resp)

	if resp.StatusCode != http.StatusAccepted {
		return statusError("Copy", resp)
	}

	monitor := resp.Header.Get("Location")
	if monitor == "" {
		return &Error{Kind: KindUnexpectedStatus, Op: "Copy", Path: from, Status: resp.StatusCode,
			Err: errors.New("accepted copy has no monitor URL")}
	}

	return c.awaitCopy(ctx, from, monitor)
}

// awaitCopy polls an async-operation monitor URL until the copy finishes.
// Monitor URLs are pre-authorized, so the bare transport is used.
func (c *Client) awaitCopy(ctx context.Context, name, monitor string) error {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, monitor, nil)
		if err != nil {
			return &Error{Kind: KindRequestFailed, Op: "Copy", Path: name, Err: err}
		}

		resp, err := c.upload.Do(req)
		if err != nil {
			return &Error{Kind: KindRequestFailed, Op: "Copy", Path: name, Err: err}
		}

		var status asyncStatus
		decodeErr := json.NewDecoder(resp.Body).Decode(&status)
		drainBody(resp)
		if decodeErr != nil {
			return &Error{Kind: KindRequestFailed, Op: "Copy", Path: name, Status: resp.StatusCode, Err: decodeErr}
		}

		switch status.Status {
		case "completed":
			return nil
		case "failed", "deleteFailed":
			return &Error{Kind: KindUnexpectedStatus, Op: "Copy", Path: name,
				Err: fmt.Errorf("async copy reported %q", status.Status)}
		}

		select {
		case <-ctx.Done():
			return &Error{Kind: KindRequestFailed, Op: "Copy", Path: name, Err: ctx.Err()}
		default:
		}
		c.sleep(copyPollInterval)
	}
}

// SetModTime updates the client-visible modification time of the item at
// name without rewriting its content.
func (c *Client) SetModTime(ctx context.Context, name string, t time.Time) (*Item, error) {
	body := map[string]any{
		"fileSystemInfo": FileSystemInfo{LastModifiedDateTime: t.UTC()},
	}

	var item Item
	if err := c.doJSON(ctx, "SetModTime", http.MethodPatch, c.itemURL(name, ""), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// driveRootPath renders a drive-absolute folder path in the
// parentReference form the API expects.
func driveRootPath(dir string) string {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" || dir == "." {
		return "/drive/root:"
	}
	if !strings.HasPrefix(dir, "/") {
		dir = "/" + dir
	}
	return "/drive/root:" + dir
}
