// Package services provides frontend-agnostic access to the MyDMAM server:
// realm and storage discovery, directory listings and full-text search.
//
// Transport failures never cross this layer. A failed call is logged,
// published as an error event and returned as nil ("no data").
package services

import (
	"context"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/models"
)

// Backend is the part of api.Client the services depend on.
type Backend interface {
	GetRealms(ctx context.Context) (*models.RealmListResponse, error)
	GetStorages(ctx context.Context, realm string) (*models.StorageListResponse, error)
	List(ctx context.Context, req api.ListRequest) (*models.FileResponse, error)
	Search(ctx context.Context, req api.SearchRequest) (*models.OpenSearchResponse, error)
}

var _ Backend = (*api.Client)(nil)

// Crumb is one ancestor directory of a listing.
type Crumb struct {
	Name     string
	Path     string
	HashPath string
}
