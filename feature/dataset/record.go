package dataset

import (
	"strings"

	"ebook-library/core/catalog"
	"ebook-library/core/utils"
)

// Header is the column order of CSV exports, matching the JSON field names.
var Header = []string{
	"id", "title", "author", "fileName", "fileExtension", "filePath",
	"addedDate", "genre", "description", "coverImage", "rating", "downloadCount",
}

// toBook converts one loosely typed dataset entry. Entries without a file path are rejected.
func toBook(rec map[string]any, unknownAuthor string) (catalog.Book, bool) {
	path := strings.TrimSpace(utils.ToString(rec["filePath"]))
	if path == "" {
		return catalog.Book{}, false
	}

	fileName := utils.ToString(rec["fileName"])
	title := strings.TrimSpace(utils.ToString(rec["title"]))
	if title == "" {
		title = fileName
	}
	if title == "" {
		title = path
	}
	author := strings.TrimSpace(utils.ToString(rec["author"]))
	if author == "" {
		author = unknownAuthor
	}

	return catalog.Book{
		Title:         title,
		Author:        author,
		FileName:      fileName,
		FileExtension: strings.ToLower(strings.TrimPrefix(utils.ToString(rec["fileExtension"]), ".")),
		FilePath:      path,
		AddedDate:     utils.ToString(rec["addedDate"]),
		Genre:         catalog.StringPtr(strings.TrimSpace(utils.ToString(rec["genre"]))),
		Description:   catalog.StringPtr(utils.ToString(rec["description"])),
		CoverImage:    catalog.StringPtr(utils.ToString(rec["coverImage"])),
		Rating:        utils.ToFloat(rec["rating"]),
		DownloadCount: utils.ToInt(rec["downloadCount"]),
	}, true
}

// row renders a book in Header order.
func row(b catalog.Book) []string {
	return []string{
		utils.ToString(int64(b.ID)),
		b.Title,
		b.Author,
		b.FileName,
		b.FileExtension,
		b.FilePath,
		b.AddedDate,
		deref(b.Genre),
		deref(b.Description),
		deref(b.CoverImage),
		utils.ToString(b.Rating),
		utils.ToString(int64(b.DownloadCount)),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
