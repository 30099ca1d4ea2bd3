package platform

// Package platform contains filesystem glue shared by the service:
// directory bootstrap, existence checks, and download filename sanitizing.
