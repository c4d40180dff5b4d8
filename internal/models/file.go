// Package models holds the JSON shapes exchanged with the MyDMAM server.
package models

import (
	"path"
	"time"
)

// RealmListResponse is returned by GET /filesystem/list.
type RealmListResponse struct {
	Realms []string `json:"realms"`
}

// StorageListResponse is returned by GET /filesystem/list/{realm}.
type StorageListResponse struct {
	Realm    string   `json:"realm"`
	Storages []string `json:"storages"`
}

// FileItemResponse describes one indexed file or directory.
type FileItemResponse struct {
	Directory bool   `json:"directory"`
	Path      string `json:"path"`
	HashPath  string `json:"hashPath"`
	Modified  int64  `json:"modified"` // epoch milliseconds
	Length    int64  `json:"length"`
}

// Name returns the last path element.
func (f FileItemResponse) Name() string {
	if f.Path == "" || f.Path == "/" {
		return f.Path
	}
	return path.Base(f.Path)
}

// ModTime converts Modified to a time.Time. Zero for a missing date.
func (f FileItemResponse) ModTime() time.Time {
	if f.Modified <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(f.Modified)
}

// FileResponse is one page of a directory listing.
type FileResponse struct {
	Realm          string             `json:"realm"`
	Storage        string             `json:"storage"`
	CurrentItem    *FileItemResponse  `json:"currentItem"`
	Path           string             `json:"path"`
	ParentHashPath string             `json:"parentHashPath"`
	ListSize       int                `json:"listSize"`
	SkipCount      int                `json:"skipCount"`
	Total          int                `json:"total"`
	Sort           *FileSort          `json:"sort"`
	List           []FileItemResponse `json:"list"`
}
