// Package scraper crawls the documentation site and fills the document
// store. Discovery walks same-site links breadth-first to a fixed depth,
// then pages are fetched concurrently under a shared politeness rate limit.
// Each page is reduced to a title, plain text, and a Markdown rendering of
// its main content region, categorized by URL path, and upserted by URL.
package scraper
