/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Project as returned by the /v1/project endpoints
type Project struct {
	UUID        string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []Tag  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type Tag struct {
	Name string `json:"name" yaml:"name"`
}

// NewTags converts plain names into tag objects, skipping empty names
func NewTags(names ...string) []Tag {
	if len(names) == 0 {
		return nil
	}
	tags := make([]Tag, 0, len(names))
	for _, n := range names {
		if n != "" {
			tags = append(tags, Tag{Name: n})
		}
	}
	return tags
}

// TagNames is the inverse of NewTags
func TagNames(tags []Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

// ProjectCreateRequest is the PUT /v1/project body
type ProjectCreateRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Tags        []Tag  `json:"tags"`
}

// ProjectUpdateRequest is the POST /v1/project body
type ProjectUpdateRequest struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Tags        []Tag  `json:"tags"`
}

// ProjectDeleteRequest is the DELETE /v1/project body
type ProjectDeleteRequest struct {
	UUID string `json:"uuid"`
}
