package main

import (
	"io"
	"os"

	"github.com/cdacos/allegro/pkg/cwr/dispatch"
	"github.com/cdacos/allegro/pkg/cwr/lineio"
	"github.com/cdacos/allegro/pkg/cwr/version"
)

// dispatchFile reads every line of filePath and dispatches it against a
// fresh resolver pinned to defaultVersion with Override (an HDR in the
// file does not change the active version), returning every entry in
// source order.
func dispatchFile(filePath string, defaultVersion version.Version) ([]dispatch.Entry, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	resolver := version.NewResolver()
	resolver.Override(defaultVersion)
	dispatcher := dispatch.New(resolver)

	var entries []dispatch.Entry
	reader := lineio.NewReader(file)
	for {
		lineNum, line, lineWarnings, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entry := dispatcher.Dispatch(lineNum, line)
		entry.Warnings = append(lineWarnings, entry.Warnings...)
		entries = append(entries, entry)
	}
	return entries, nil
}
