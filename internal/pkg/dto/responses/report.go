package responses

// RenderedReport describes the artifact produced by the document renderer.
// For the download target Content carries the artifact bytes; for the store
// target Bucket/ObjectName point at the stored object instead.
type RenderedReport struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	Content     []byte `json:"content,omitempty"`
	Bucket      string `json:"bucket,omitempty"`
	ObjectName  string `json:"object_name,omitempty"`
	URL         string `json:"url,omitempty"`
}
