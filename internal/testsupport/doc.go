// Package testsupport holds helpers shared by package tests: sized media
// files, executable shell stubs standing in for ffmpeg/ffprobe, and
// throwaway configurations.
package testsupport
