package services

import (
	"context"
	"sync"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/models"
)

// fakeBackend records calls and answers from canned values.
type fakeBackend struct {
	mu sync.Mutex

	realms   []string
	storages []string
	listResp *models.FileResponse
	search   *models.OpenSearchResponse
	err      error

	listCalls   []api.ListRequest
	searchCalls []api.SearchRequest
	storageArgs []string
}

func (f *fakeBackend) GetRealms(ctx context.Context) (*models.RealmListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.RealmListResponse{Realms: f.realms}, nil
}

func (f *fakeBackend) GetStorages(ctx context.Context, realm string) (*models.StorageListResponse, error) {
	f.mu.Lock()
	f.storageArgs = append(f.storageArgs, realm)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &models.StorageListResponse{Realm: realm, Storages: f.storages}, nil
}

func (f *fakeBackend) List(ctx context.Context, req api.ListRequest) (*models.FileResponse, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.listResp, nil
}

func (f *fakeBackend) Search(ctx context.Context, req api.SearchRequest) (*models.OpenSearchResponse, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.search, nil
}
