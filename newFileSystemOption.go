package onedrive

import (
	"github.com/c2fo/vfs/v7/options"
)

const (
	optionNameAccessToken         = "accessToken"
	optionNameDriveID             = "driveID"
	optionNameChunkSize           = "chunkSize"
	optionNameMaxSimpleUploadSize = "maxSimpleUploadSize"
	optionNameMimeType            = "mimeType"
	optionNameTempDir             = "tempDir"
	optionNameRetryCount          = "retryCount"
	optionNameClient              = "client"
)

// WithAccessToken sets the OAuth2 bearer token for Microsoft Graph.
func WithAccessToken(token string) options.NewFileSystemOption[FileSystem] {
	return &accessTokenOpt{token: token}
}

type accessTokenOpt struct {
	token string
}

func (o *accessTokenOpt) Apply(fs *FileSystem) {
	fs.options.AccessToken = o.token
}

func (o *accessTokenOpt) NewFileSystemOptionName() string {
	return optionNameAccessToken
}

// WithDriveID selects a drive other than the signed-in user's default drive.
func WithDriveID(id string) options.NewFileSystemOption[FileSystem] {
	return &driveIDOpt{id: id}
}

type driveIDOpt struct {
	id string
}

func (o *driveIDOpt) Apply(fs *FileSystem) {
	fs.options.DriveID = o.id
}

func (o *driveIDOpt) NewFileSystemOptionName() string {
	return optionNameDriveID
}

// WithChunkSize sets the byte-range size for resumable upload sessions.
// The API requires a multiple of 327,680 bytes. Default is 3,276,800.
func WithChunkSize(size int64) options.NewFileSystemOption[FileSystem] {
	return &chunkSizeOpt{size: size}
}

type chunkSizeOpt struct {
	size int64
}

func (o *chunkSizeOpt) Apply(fs *FileSystem) {
	fs.options.ChunkSize = o.size
}

func (o *chunkSizeOpt) NewFileSystemOptionName() string {
	return optionNameChunkSize
}

// WithMaxSimpleUploadSize sets the largest payload written with a single
// direct PUT. Larger payloads use a chunked upload session. Default is 4MB.
func WithMaxSimpleUploadSize(size int64) options.NewFileSystemOption[FileSystem] {
	return &maxSimpleUploadSizeOpt{size: size}
}

type maxSimpleUploadSizeOpt struct {
	size int64
}

func (o *maxSimpleUploadSizeOpt) Apply(fs *FileSystem) {
	fs.options.MaxSimpleUploadSize = o.size
}

func (o *maxSimpleUploadSizeOpt) NewFileSystemOptionName() string {
	return optionNameMaxSimpleUploadSize
}

// WithMimeType sets the Content-Type sent on direct uploads. Default is
// "text/plain".
func WithMimeType(mimeType string) options.NewFileSystemOption[FileSystem] {
	return &mimeTypeOpt{mimeType: mimeType}
}

type mimeTypeOpt struct {
	mimeType string
}

func (o *mimeTypeOpt) Apply(fs *FileSystem) {
	fs.options.MimeType = o.mimeType
}

func (o *mimeTypeOpt) NewFileSystemOptionName() string {
	return optionNameMimeType
}

// WithTempDir sets the directory for temporary files used during read/write
// operations. Defaults to os.TempDir() if not specified.
func WithTempDir(dir string) options.NewFileSystemOption[FileSystem] {
	return &tempDirOpt{dir: dir}
}

type tempDirOpt struct {
	dir string
}

func (o *tempDirOpt) Apply(fs *FileSystem) {
	fs.options.TempDir = o.dir
}

func (o *tempDirOpt) NewFileSystemOptionName() string {
	return optionNameTempDir
}

// WithRetryCount sets the number of retry attempts for transient errors on
// metadata and session-creation calls. Default is 3.
func WithRetryCount(count int) options.NewFileSystemOption[FileSystem] {
	return &retryCountOpt{count: count}
}

type retryCountOpt struct {
	count int
}

func (o *retryCountOpt) Apply(fs *FileSystem) {
	fs.options.RetryCount = o.count
}

func (o *retryCountOpt) NewFileSystemOptionName() string {
	return optionNameRetryCount
}

// WithClient sets a custom Graph client. Useful for testing or when you need
// to provide a pre-configured client.
func WithClient(client Client) options.NewFileSystemOption[FileSystem] {
	return &clientOpt{client: client}
}

type clientOpt struct {
	client Client
}

func (o *clientOpt) Apply(fs *FileSystem) {
	fs.client = o.client
}

func (o *clientOpt) NewFileSystemOptionName() string {
	return optionNameClient
}
