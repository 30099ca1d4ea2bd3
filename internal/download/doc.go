package download

// Package download implements the extraction pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). It drives the ordered
// attempt plan against the engine, classifies upstream failures to decide
// retry vs. abort, and manages the lifecycle of the temporary artifact a
// successful extraction produces.
