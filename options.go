package onedrive

import (
	"os"

	"github.com/c2fo/vfs/contrib/backend/onedrive/graph"
)

// Options holds configuration options for the OneDrive FileSystem.
type Options struct {
	// AccessToken is the OAuth2 bearer token for Microsoft Graph (required).
	AccessToken string

	// DriveID selects a drive other than the signed-in user's default
	// drive. Leave empty for the default drive.
	DriveID string

	// ChunkSize is the byte-range size for resumable upload sessions
	// (default: 3,276,800, i.e. ten 320 KiB fragments). The API requires a
	// multiple of 327,680 bytes.
	ChunkSize int64

	// MaxSimpleUploadSize is the largest payload written with a single
	// direct PUT (default: 4MB, the API's limit). Larger payloads use a
	// chunked upload session.
	MaxSimpleUploadSize int64

	// MimeType is the Content-Type sent on direct uploads (default:
	// "text/plain"). Chunked uploads let the service infer the type.
	MimeType string

	// TempDir is the directory for temporary files used during read/write
	// operations. Defaults to os.TempDir() if not specified.
	TempDir string

	// RetryCount is the number of retry attempts for transient errors on
	// metadata and session-creation calls (default: 3). Chunk uploads have
	// their own retry policy and ignore this value.
	RetryCount int
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		ChunkSize:           graph.DefaultChunkSize,
		MaxSimpleUploadSize: 4 * 1024 * 1024,
		MimeType:            "text/plain",
		TempDir:             os.TempDir(),
		RetryCount:          3,
	}
}
