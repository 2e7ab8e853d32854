package onedrive

import (
	"errors"
	"os"
	"path"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"

	"github.com/c2fo/vfs/v7"
	"github.com/c2fo/vfs/v7/backend"
	"github.com/c2fo/vfs/v7/options"
	"github.com/c2fo/vfs/v7/utils"
	"github.com/c2fo/vfs/v7/utils/authority"

	"github.com/c2fo/vfs/contrib/backend/onedrive/graph"
)

// Scheme defines the file system type.
const Scheme = "onedrive"

const name = "OneDrive"

var (
	errFileSystemRequired       = errors.New("non-nil onedrive.FileSystem pointer is required")
	errAuthorityAndNameRequired = errors.New("non-empty string for name is required")
	errAccessTokenRequired      = errors.New("access token is required for OneDrive authentication")
)

// FileSystem implements vfs.FileSystem for OneDrive.
type FileSystem struct {
	client  Client
	options Options
}

// NewFileSystem initializer for FileSystem struct.
func NewFileSystem(opts ...options.NewFileSystemOption[FileSystem]) *FileSystem {
	fs := &FileSystem{
		options: NewOptions(),
	}

	options.ApplyOptions(fs, opts...)

	return fs
}

// Retry returns the default no-op retrier.
//
// Deprecated: This method is deprecated and will be removed in a future release.
func (fs *FileSystem) Retry() vfs.Retry {
	return vfs.DefaultRetryer()
}

// NewFile function returns the OneDrive implementation of vfs.File.
func (fs *FileSystem) NewFile(authorityStr, name string, opts ...options.NewFileOption) (vfs.File, error) {
	if fs == nil {
		return nil, errFileSystemRequired
	}

	if name == "" {
		return nil, errAuthorityAndNameRequired
	}

	if err := utils.ValidateAbsoluteFilePath(name); err != nil {
		return nil, err
	}

	// get location path
	absLocPath := utils.EnsureTrailingSlash(path.Dir(name))
	loc, err := fs.NewLocation(authorityStr, absLocPath)
	if err != nil {
		return nil, err
	}

	filename := path.Base(name)
	return loc.NewFile(filename, opts...)
}

// NewLocation function returns the OneDrive implementation of vfs.Location.
func (fs *FileSystem) NewLocation(authorityStr, name string) (vfs.Location, error) {
	if fs == nil {
		return nil, errFileSystemRequired
	}

	if name == "" {
		return nil, errAuthorityAndNameRequired
	}

	if err := utils.ValidateAbsoluteLocationPath(name); err != nil {
		return nil, err
	}

	// OneDrive drive selection happens via the DriveID option, so the
	// authority is usually empty. We still create an authority object for
	// consistency with other backends.
	auth, err := authority.NewAuthority(utils.RemoveTrailingSlash(authorityStr))
	if err != nil {
		return nil, err
	}

	return &Location{
		fileSystem: fs,
		path:       utils.EnsureTrailingSlash(path.Clean(name)),
		authority:  auth,
	}, nil
}

// Name returns "OneDrive"
func (fs *FileSystem) Name() string {
	return name
}

// Scheme returns "onedrive" as the initial part of a file URI ie: onedrive://
func (fs *FileSystem) Scheme() string {
	return Scheme
}

// Client returns the underlying Graph client, creating it if necessary.
//
// Metadata, session-creation, and download-resolution calls ride an
// authenticated, retrying transport. Chunk uploads use the graph client's
// separate bare transport: upload session URLs are pre-authorized and must
// not carry an Authorization header.
func (fs *FileSystem) Client() (Client, error) {
	if fs.client == nil {
		token := fs.options.AccessToken

		// If no token in options, try environment variable
		if token == "" {
			token = os.Getenv("VFS_ONEDRIVE_ACCESS_TOKEN")
		}

		if token == "" {
			return nil, errAccessTokenRequired
		}

		rc := retryablehttp.NewClient()
		rc.RetryMax = fs.options.RetryCount
		rc.Logger = nil
		rc.HTTPClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}

		clientOpts := []graph.ClientOption{
			graph.WithChunkSize(fs.options.ChunkSize),
		}
		if fs.options.DriveID != "" {
			clientOpts = append(clientOpts, graph.WithDrive("drives/"+fs.options.DriveID))
		}

		fs.client = graph.NewClient(rc.StandardClient(), clientOpts...)
	}

	return fs.client, nil
}

func init() {
	// Register a default FileSystem
	backend.Register(Scheme, NewFileSystem())
}
