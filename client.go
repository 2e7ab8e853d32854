package onedrive

import (
	"context"
	"io"
	"time"

	"github.com/c2fo/vfs/contrib/backend/onedrive/graph"
)

// Client defines the subset of Graph drive operations used by this backend.
// This interface limits the API surface and enables efficient mocking in
// tests. *graph.Client implements this interface.
type Client interface {
	// ItemByPath returns metadata for the file or folder at a drive path.
	ItemByPath(ctx context.Context, name string) (*graph.Item, error)

	// Children lists the items directly under a folder, following pagination.
	Children(ctx context.Context, name string) ([]graph.Item, error)

	// Download opens a read stream of a file's content via its
	// pre-authorized download URL.
	Download(ctx context.Context, name string) (io.ReadCloser, error)

	// SimpleUpload writes content in a single direct PUT (payloads up to the
	// simple-upload threshold).
	SimpleUpload(ctx context.Context, name string, content io.Reader, size int64, contentType string) (*graph.Item, error)

	// BeginUpload creates a resumable upload session, creating the parent
	// folder chain first.
	BeginUpload(ctx context.Context, name string, size int64) (*graph.UploadSession, error)

	// UploadFromSession streams content into an upload session as ordered
	// byte-range chunks.
	UploadFromSession(ctx context.Context, session *graph.UploadSession, content io.Reader) error

	// EnsureFolder resolves a folder, creating missing path segments.
	EnsureFolder(ctx context.Context, name string) (*graph.Item, error)

	// Move relocates and/or renames an item.
	Move(ctx context.Context, from, to string) (*graph.Item, error)

	// Copy duplicates an item, blocking until the async copy completes.
	Copy(ctx context.Context, from, to string) error

	// Delete removes an item.
	Delete(ctx context.Context, name string) error

	// SetModTime updates an item's modification time without rewriting its
	// content.
	SetModTime(ctx context.Context, name string, t time.Time) (*graph.Item, error)
}
