package civitai

// Civitai API 响应结构（/api/v1/models 与 /api/v1/model-versions）
// 只保留镜像与下载编排需要读取的字段，统一为一套规范结构，
// 不同端点之间的细微差异在解码边界处收敛到这一套类型。

type Model struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Type          string         `json:"type"`
	Nsfw          bool           `json:"nsfw"`
	Tags          []string       `json:"tags"`
	Stats         Stats          `json:"stats"`
	Creator       Creator        `json:"creator"`
	ModelVersions []ModelVersion `json:"modelVersions"`
}

type Stats struct {
	DownloadCount int     `json:"downloadCount"`
	FavoriteCount int     `json:"favoriteCount"`
	CommentCount  int     `json:"commentCount"`
	RatingCount   int     `json:"ratingCount"`
	Rating        float64 `json:"rating"`
}

type Creator struct {
	Username string `json:"username"`
	Image    string `json:"image"`
}

type ModelVersion struct {
	ID           int          `json:"id"`
	ModelId      int          `json:"modelId"`
	Name         string       `json:"name"`
	BaseModel    string       `json:"baseModel"`
	PublishedAt  string       `json:"publishedAt"`
	TrainedWords []string     `json:"trainedWords"`
	Files        []ModelFile  `json:"files"`
	Images       []ModelImage `json:"images"`
	DownloadUrl  string       `json:"downloadUrl"`
}

type ModelFile struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	SizeKB      float64  `json:"sizeKB"`
	Type        string   `json:"type"`
	Primary     bool     `json:"primary"`
	Metadata    Metadata `json:"metadata"`
	Hashes      Hashes   `json:"hashes"`
	DownloadUrl string   `json:"downloadUrl"`
}

type Metadata struct {
	Fp     string `json:"fp"`
	Size   string `json:"size"`
	Format string `json:"format"`
}

type Hashes struct {
	AutoV2 string `json:"AutoV2"`
	SHA256 string `json:"SHA256"`
	CRC32  string `json:"CRC32"`
	BLAKE3 string `json:"BLAKE3"`
}

type ModelImage struct {
	ID     int    `json:"id"`
	URL    string `json:"url"`
	Hash   string `json:"hash"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Nsfw   bool   `json:"nsfw"`
}

type ModelListResponse struct {
	Items    []Model            `json:"items"`
	Metadata PaginationMetadata `json:"metadata"`
}

type PaginationMetadata struct {
	TotalItems  int    `json:"totalItems"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
	TotalPages  int    `json:"totalPages"`
	NextPage    string `json:"nextPage"`
	NextCursor  string `json:"nextCursor"`
}

// QueryParams /api/v1/models 查询参数
type QueryParams struct {
	Limit    int
	Page     int
	Query    string
	Tag      string
	Username string
	Types    []string
	Sort     string
	Period   string
	Nsfw     bool
	Cursor   string
}
