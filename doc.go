// Package main provides the entry point for the JobVista portal. It runs a
// web server using the Fiber framework that serves the public job-listing
// content and the JSON API behind the admin panel. The application uses gorm
// for data persistence over Postgres and keeps admin sessions in a
// cookie-referenced storage backend.
package main
