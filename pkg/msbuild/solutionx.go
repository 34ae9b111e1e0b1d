// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package msbuild

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseSolutionXMLProjects extracts member project paths from an XML
// solution document. Projects may appear directly under the root or nested
// inside folders; a token walk keeps the declaration order intact across
// both, which a struct unmarshal would not.
func parseSolutionXMLProjects(data []byte) ([]string, error) {
	var paths []string

	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return paths, nil
		} else if err != nil {
			return nil, fmt.Errorf("parsing solution document: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "Solution", "Folder":
			// Descend into the container to visit nested projects.
		case "Project":
			path, ok := attrValue(start, "Path")
			if !ok {
				return nil, errors.New("project element has no path attribute")
			}

			paths = append(paths, strings.ReplaceAll(path, "\\", "/"))
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("parsing solution document: %w", err)
			}
		default:
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("parsing solution document: %w", err)
			}
		}
	}
}

func attrValue(element xml.StartElement, name string) (string, bool) {
	for _, attr := range element.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}
