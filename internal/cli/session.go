package cli

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/mexm/mydmam-browser/internal/api"
	"github.com/mexm/mydmam-browser/internal/config"
	"github.com/mexm/mydmam-browser/internal/constants"
	"github.com/mexm/mydmam-browser/internal/events"
	"github.com/mexm/mydmam-browser/internal/http"
	"github.com/mexm/mydmam-browser/internal/prefs"
	"github.com/mexm/mydmam-browser/internal/services"
)

// loadConfig reads the config file and applies environment and flag
// overrides. A missing proxy password is asked for on a terminal.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg.MergeWithFlags(apiBaseURL, proxyMode)

	if http.NeedsProxyPassword(cfg) && term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := promptPassword(fmt.Sprintf("Proxy password for %s: ", cfg.ProxyUser))
		if err != nil {
			return nil, fmt.Errorf("failed to read proxy password: %w", err)
		}
		cfg.ProxyPassword = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// sessionStore is the preference store seen by one invocation: --realm and
// --limit shadow the persisted values without overwriting them.
type sessionStore struct {
	prefs.Store
	realm    string
	pageSize int
}

func (s *sessionStore) SelectedRealm() (string, error) {
	if s.realm != "" {
		return s.realm, nil
	}
	return s.Store.SelectedRealm()
}

func (s *sessionStore) PageSize() int {
	if s.pageSize != 0 {
		return prefs.NormalizePageSize(s.pageSize)
	}
	return s.Store.PageSize()
}

// session bundles what a command needs to talk to the server.
type session struct {
	cfg    *config.Config
	client *api.Client
	store  *sessionStore
	bus    *events.EventBus
	files  *services.FileService
	search *services.SearchService

	traceDone sync.WaitGroup
}

// openSession loads configuration and preferences and builds the services.
// Nothing is sent to the server yet.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	pf, err := config.OpenPreferences(prefsFile)
	if err != nil {
		return nil, err
	}
	store := &sessionStore{Store: pf, realm: realmFlag}

	log := GetLogger()
	client, err := api.NewClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	bus := events.NewEventBus(constants.EventBusDefaultBuffer)
	s := &session{
		cfg:    cfg,
		client: client,
		store:  store,
		bus:    bus,
		files:  services.NewFileService(client, store, bus, log),
		search: services.NewSearchService(client, store, bus, log),
	}
	s.traceEvents()
	return s, nil
}

// traceEvents logs every published event at debug level until Close.
func (s *session) traceEvents() {
	ch := s.bus.SubscribeAll()
	log := GetLogger().Component("events")
	s.traceDone.Add(1)
	go func() {
		defer s.traceDone.Done()
		for ev := range ch {
			e := log.Debug().Str("type", string(ev.Type()))
			if errEv, ok := ev.(*events.ErrorEvent); ok {
				e = e.Str("operation", errEv.Operation).AnErr("cause", errEv.Error)
			}
			e.Msg("Event")
		}
	}()
}

// Close stops the event bus and waits for the trace to drain.
func (s *session) Close() {
	s.bus.Close()
	s.traceDone.Wait()
	if n := s.bus.GetDroppedEventCount(); n > 0 {
		GetLogger().Debug().Int64("dropped", n).Msg("Events dropped")
	}
}

// realm returns the realm in use, or an error telling how to pick one.
func (s *session) realm() (string, error) {
	realm := prefs.RealmOrEmpty(s.store)
	if realm == "" {
		return "", fmt.Errorf("no realm selected: run 'mydmam-browser realms select <realm>' or pass --realm")
	}
	return realm, nil
}

// openPreferences opens the preference file alone, for commands that do not
// reach the server.
func openPreferences() (*config.PreferenceFile, error) {
	return config.OpenPreferences(prefsFile)
}
