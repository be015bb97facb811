// Command reelsort scans configured source directories for video files,
// plans a Movies/Series library layout for them, and moves the selected
// files into place.
package main
