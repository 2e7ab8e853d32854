// Package onedrive implements vfs.FileSystem for Microsoft OneDrive via the
// Microsoft Graph drive API.
//
// # Usage
//
// Rely on github.com/c2fo/vfs/v7/backend
//
//	import(
//	    "github.com/c2fo/vfs/v7/backend"
//	    "github.com/c2fo/vfs/contrib/backend/onedrive"
//	)
//
//	func UseFs() error {
//	    fs := backend.Backend(onedrive.Scheme)
//	    ...
//	}
//
// Or call directly:
//
//	import "github.com/c2fo/vfs/contrib/backend/onedrive"
//
//	func DoSomething() {
//	    fs := onedrive.NewFileSystem(
//	        onedrive.WithAccessToken("your-oauth-token"),
//	    )
//	    location, err := fs.NewLocation("", "/path/to/folder/")
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// # Authentication
//
// The OneDrive backend requires an OAuth2 bearer token with Files.ReadWrite
// scope, obtained through any Microsoft identity platform flow. Set it via
// the WithAccessToken option or the VFS_ONEDRIVE_ACCESS_TOKEN environment
// variable:
//
//	fs := onedrive.NewFileSystem(
//	    onedrive.WithAccessToken(os.Getenv("VFS_ONEDRIVE_ACCESS_TOKEN")),
//	)
//
// The signed-in user's default drive is used unless WithDriveID selects
// another drive.
//
// # Uploads
//
// Writes are buffered to a local temp file and uploaded on Close. Payloads
// up to 4MB (WithMaxSimpleUploadSize) go up in a single direct PUT with the
// configured MIME type (WithMimeType, default text/plain). Larger payloads
// use a resumable upload session: the backend creates the session, then
// sends sequential byte-range chunks of WithChunkSize bytes (default
// 3,276,800; the API requires a multiple of 327,680). Chunk requests carry
// no Authorization header because the session URL is pre-authorized, and
// they ride a separate transport from all other API calls.
//
// Rate-limited chunks (429) wait out the server's Retry-After and re-send
// the same range. Server errors (5xx) back off exponentially with a bounded
// number of retries. A 404 on a chunk means the session expired server-side
// and the upload must start over with a new session; the backend does not
// persist session state across process restarts.
//
// # Limitations
//
// 1. No Range Reads on Seek: reads resolve the item's pre-authorized
// download URL and buffer the content to a local temp file so Seek works.
//
// 2. No Append Mode: files must be uploaded in their entirety. Write
// operations use temp file buffering and upload on Close.
//
// 3. Upload Ordering: chunks of one session are strictly sequential; the
// session tracks a single expected next byte offset, so there is no
// parallel chunk upload.
//
// 4. Case Insensitive Paths: OneDrive paths are case-insensitive but
// case-preserving.
//
// 5. Async Copy: the copy API is asynchronous; CopyToFile blocks while
// polling the operation's monitor URL.
//
// # URI Format
//
//	onedrive:///path/to/file.txt
//	onedrive:///path/to/folder/
//
// The authority is usually empty; drive selection happens via WithDriveID.
package onedrive
