package catalog

// Book is one cataloged e-book file.
type Book struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"size:512;not null;index" json:"title"`
	Author        string  `gorm:"size:512;index" json:"author"`
	FileName      string  `gorm:"size:512" json:"fileName"`
	FileExtension string  `gorm:"size:16;index" json:"fileExtension"`
	FilePath      string  `gorm:"size:768;not null;uniqueIndex" json:"filePath"`
	AddedDate     string  `gorm:"size:10" json:"addedDate"`
	Genre         *string `gorm:"size:128;index" json:"genre"`
	Description   *string `gorm:"type:text" json:"description"`
	CoverImage    *string `gorm:"type:text" json:"coverImage"`
	Rating        float64 `gorm:"default:0" json:"rating"`
	DownloadCount int     `gorm:"default:0" json:"downloadCount"`
}

// TableName pins the table name.
func (Book) TableName() string {
	return "books"
}

// Columns lists the column names the catalog reads and writes.
var Columns = []string{
	"id", "title", "author", "file_name", "file_extension", "file_path",
	"added_date", "genre", "description", "cover_image", "rating", "download_count",
}

// PathRef is the minimal projection used by reconciliation.
type PathRef struct {
	ID       uint
	FilePath string
}

// Filter narrows List results. Empty strings are ignored.
type Filter struct {
	Search   string
	Genre    string
	Author   string
	FileType string
	Page     int
	Limit    int
}

// AuthorCount is one row of the authors listing.
type AuthorCount struct {
	Author    string `json:"author"`
	BookCount int64  `json:"bookCount"`
}

// GenreCount is one row of the genres listing.
type GenreCount struct {
	Genre     string `json:"genre"`
	BookCount int64  `json:"bookCount"`
}

// FileTypeCount is the number of books with one extension.
type FileTypeCount struct {
	FileExtension string `json:"fileExtension"`
	Count         int64  `json:"count"`
}

// Stats summarizes the catalog.
type Stats struct {
	TotalBooks   int64           `json:"totalBooks"`
	TotalAuthors int64           `json:"totalAuthors"`
	FileTypes    []FileTypeCount `json:"fileTypes"`
}

// NameUpdate sets a book's title and author.
type NameUpdate struct {
	ID     uint
	Title  string
	Author string
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
