// Package books serves the catalog to the web client: filtered and paginated listing, single
// book lookup, genre and description edits, and revealing a book's file on the local machine.
//
// # HTTP Endpoints
//
//   - GET /books : search, genre, author, fileType, page, limit
//   - GET /books/:id
//   - PUT /books/:id/genre
//   - POST /open-folder
package books
