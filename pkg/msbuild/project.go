package msbuild

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Project is the parsed, immutable form of a single project descriptor.
type Project struct {
	// Path is the descriptor file this record was loaded from.
	Path string
	// TargetFramework is the framework moniker, e.g. "net8.0". Non-empty for
	// any project loaded from a descriptor; empty only for the implicit
	// project backing a single-file application.
	TargetFramework string
	// SdkID is the project's SDK identifier, e.g. "Microsoft.NET.Sdk.Web".
	// Empty when the descriptor does not declare one.
	SdkID string
	// Kind is inferred from SdkID and the output type.
	Kind ProjectKind
	// AssemblyName is the declared assembly name, or the descriptor's file
	// stem when the descriptor leaves it unset or blank.
	AssemblyName string
}

// projectFile mirrors the subset of the MSBuild project schema this package
// reads. The SDK identifier may appear as an attribute on the root element,
// as a Name attribute of a nested Sdk element, or as that element's text.
type projectFile struct {
	XMLName        xml.Name        `xml:"Project"`
	Sdk            string          `xml:"Sdk,attr"`
	SdkElements    []sdkElement    `xml:"Sdk"`
	PropertyGroups []propertyGroup `xml:"PropertyGroup"`
}

type sdkElement struct {
	Name string `xml:"Name,attr"`
	Text string `xml:",chardata"`
}

type propertyGroup struct {
	TargetFrameworks []string `xml:"TargetFramework"`
	OutputTypes      []string `xml:"OutputType"`
	AssemblyNames    []string `xml:"AssemblyName"`
}

// LoadProject reads and parses the project descriptor at path.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	return parseProject(data, path)
}

// parseProject extracts project metadata in document order. Repeated
// properties follow last-write-wins, matching MSBuild evaluation; an
// AssemblyName is only taken when non-empty.
func parseProject(data []byte, path string) (*Project, error) {
	var doc projectFile
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDescriptorError{Path: path, Err: fmt.Errorf("parsing xml: %w", err)}
	}

	sdkID := strings.TrimSpace(doc.Sdk)
	if sdkID == "" {
		for _, el := range doc.SdkElements {
			if name := strings.TrimSpace(el.Name); name != "" {
				sdkID = name
			} else if text := strings.TrimSpace(el.Text); text != "" {
				sdkID = text
			}
		}
	}

	var targetFramework, outputType, assemblyName string
	for _, group := range doc.PropertyGroups {
		for _, v := range group.TargetFrameworks {
			targetFramework = strings.TrimSpace(v)
		}
		for _, v := range group.OutputTypes {
			outputType = strings.TrimSpace(v)
		}
		for _, v := range group.AssemblyNames {
			if v := strings.TrimSpace(v); v != "" {
				assemblyName = v
			}
		}
	}

	if targetFramework == "" {
		return nil, &MissingTargetFrameworkError{Path: path}
	}

	if assemblyName == "" {
		assemblyName = fileStem(path)
	}

	return &Project{
		Path:            path,
		TargetFramework: targetFramework,
		SdkID:           sdkID,
		Kind:            classifyProject(sdkID, outputType),
		AssemblyName:    assemblyName,
	}, nil
}

// classifyProject infers the project kind from the SDK identifier and output
// type. A missing SDK identifier is tolerated and yields Unknown.
func classifyProject(sdkID string, outputType string) ProjectKind {
	switch sdkID {
	case sdkWeb, sdkRazor, sdkBlazorWebAssembly, sdkWorker:
		return WebApplication
	case sdkDefault:
		switch {
		case strings.EqualFold(outputType, "Exe"):
			return ConsoleApplication
		case outputType == "" || strings.EqualFold(outputType, "Library"):
			return Library
		}
	}

	return Unknown
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
