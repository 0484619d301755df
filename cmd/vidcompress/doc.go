// Package main hosts the vidcompress CLI.
//
// The root command takes one video path and re-encodes it until the result
// fits the Discord upload limit, writing <stem>_discord.mp4 next to the input.
// Subcommands check encoder availability and scaffold configuration. All of
// the compression behaviour lives in internal/compress; this package only
// resolves configuration, locates binaries, and renders the outcome.
package main
