// Package urls builds article, front-page and login URLs for wiki servers
// and knows the slug conventions the servers use (empty slug = front page,
// "." as its visible location).
package urls
