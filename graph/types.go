package graph

import "time"

// Item is a drive item (file or folder) as returned by the Microsoft Graph
// drive endpoints. Only the fields this backend consumes are mapped.
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Size         int64           `json:"size"`
	ETag         string          `json:"eTag,omitempty"`
	LastModified time.Time       `json:"lastModifiedDateTime"`
	DownloadURL  string          `json:"@microsoft.graph.downloadUrl,omitempty"`
	File         *FileFacet      `json:"file,omitempty"`
	Folder       *FolderFacet    `json:"folder,omitempty"`
	Parent       *ParentRef      `json:"parentReference,omitempty"`
	FSInfo       *FileSystemInfo `json:"fileSystemInfo,omitempty"`
}

// IsFolder reports whether the item carries the folder facet.
func (i *Item) IsFolder() bool {
	return i.Folder != nil
}

// FileFacet is present on file items.
type FileFacet struct {
	MimeType string `json:"mimeType,omitempty"`
}

// FolderFacet is present on folder items.
type FolderFacet struct {
	ChildCount int64 `json:"childCount,omitempty"`
}

// ParentRef addresses an item's containing folder, by ID or by drive path.
type ParentRef struct {
	ID   string `json:"id,omitempty"`
	Path string `json:"path,omitempty"`
}

// FileSystemInfo carries client-settable timestamps.
type FileSystemInfo struct {
	LastModifiedDateTime time.Time `json:"lastModifiedDateTime"`
}

// itemList is one page of a children listing.
type itemList struct {
	Value    []Item `json:"value"`
	NextLink string `json:"@odata.nextLink,omitempty"`
}

// sessionResponse is the body returned by createUploadSession.
type sessionResponse struct {
	UploadURL          string    `json:"uploadUrl"`
	ExpirationDateTime time.Time `json:"expirationDateTime,omitempty"`
	NextExpectedRanges []string  `json:"nextExpectedRanges,omitempty"`
}

// asyncStatus is the body served by an async-operation monitor URL.
type asyncStatus struct {
	Status             string  `json:"status"`
	PercentageComplete float64 `json:"percentageComplete,omitempty"`
}

// oDataError is the standard Graph error envelope.
type oDataError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
