package services

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/events"
	"github.com/mexm/mydmam-browser/internal/logging"
	"github.com/mexm/mydmam-browser/internal/models"
	"github.com/mexm/mydmam-browser/internal/prefs"
)

// FileService handles realm, storage and directory listing calls for the
// realm held in the preference store.
type FileService struct {
	backend  Backend
	store    prefs.Store
	eventBus *events.EventBus
	logger   *logging.Logger
}

// NewFileService creates a new FileService. eventBus may be nil.
func NewFileService(backend Backend, store prefs.Store, eventBus *events.EventBus, logger *logging.Logger) *FileService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &FileService{
		backend:  backend,
		store:    store,
		eventBus: eventBus,
		logger:   logger.Component("file-service"),
	}
}

// Realm returns the selected realm, or "" when none is set.
func (fs *FileService) Realm() string {
	return prefs.RealmOrEmpty(fs.store)
}

// Realms fetches the realm list. A persisted realm the server no longer
// knows is forgotten.
func (fs *FileService) Realms(ctx context.Context) []string {
	resp, err := fs.backend.GetRealms(ctx)
	if err != nil {
		fs.fail("realms", err)
		return nil
	}

	selected, err := fs.store.SelectedRealm()
	if err == nil && !slices.Contains(resp.Realms, selected) {
		fs.logger.Info().Str("realm", selected).Msg("Selected realm is gone from the server, clearing it")
		if err := fs.store.SetSelectedRealm(nil); err != nil {
			fs.logger.Error().Err(err).Msg("Failed to clear selected realm")
		} else {
			fs.publishSelected("")
		}
	}

	if fs.eventBus != nil {
		fs.eventBus.PublishRealms(resp.Realms)
	}
	return resp.Realms
}

// SelectRealm persists realm as the session realm.
func (fs *FileService) SelectRealm(realm string) error {
	realm = strings.TrimSpace(realm)
	if realm == "" {
		return errors.New("realm name is empty")
	}
	if err := fs.store.SetSelectedRealm(&realm); err != nil {
		return err
	}
	fs.publishSelected(realm)
	return nil
}

// Storages lists the storages of the selected realm.
func (fs *FileService) Storages(ctx context.Context) []string {
	resp, err := fs.backend.GetStorages(ctx, fs.Realm())
	if err != nil {
		fs.fail("storages", err)
		return nil
	}
	return resp.Storages
}

// List fetches one page of storage/hashPath in the selected realm. An empty
// hashPath lists the storage root. Returns nil on failure.
func (fs *FileService) List(ctx context.Context, storage, hashPath string, skip, limit int, sort models.FileSort) *models.FileResponse {
	resp, err := fs.backend.List(ctx, api.ListRequest{
		Realm:    fs.Realm(),
		Storage:  storage,
		HashPath: hashPath,
		Skip:     skip,
		Limit:    limit,
		Sort:     sort,
	})
	if err != nil {
		fs.fail("list", err)
		return nil
	}
	return resp
}

// HashPath computes the hash of path inside storage of the selected realm.
func (fs *FileService) HashPath(storage, path string) (string, error) {
	return api.HashPath(fs.Realm(), storage, path)
}

// Breadcrumb returns the ancestors of the listed directory, root first.
// The listed directory itself is not part of it.
func (fs *FileService) Breadcrumb(resp *models.FileResponse) []Crumb {
	if resp == nil || resp.Path == "" || resp.Path == "/" {
		return nil
	}
	parts := strings.Split(resp.Path, "/")
	if len(parts) < 2 {
		return nil
	}

	storage := resp.Storage
	realm := resp.Realm
	if realm == "" {
		realm = fs.Realm()
	}

	crumbs := make([]Crumb, 0, len(parts)-2)
	full := ""
	for _, name := range parts[1 : len(parts)-1] {
		full += "/" + name
		hash, err := api.HashPath(realm, storage, full)
		if err != nil {
			fs.logger.Warn().Err(err).Str("path", full).Msg("Can't hash breadcrumb path")
		}
		crumbs = append(crumbs, Crumb{Name: name, Path: full, HashPath: hash})
	}
	return crumbs
}

func (fs *FileService) fail(operation string, err error) {
	fs.logger.Warn().Err(err).Str("operation", operation).Str("realm", fs.Realm()).Msg("Server call failed")
	if fs.eventBus != nil {
		fs.eventBus.PublishError(operation, err)
	}
}

func (fs *FileService) publishSelected(realm string) {
	if fs.eventBus != nil {
		fs.eventBus.PublishRealmSelected(realm)
	}
}
