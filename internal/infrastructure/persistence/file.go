package persistence

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// legacyDocumentKey is the top-level key of the old single-user document:
// {"games": [...]}. Entries under it are adopted by the configured migration
// target, or by the first subscriber whose request loads the document.
const legacyDocumentKey = "games"

// document maps subscriber id to an ordered entry list.
type document map[string][]entity.WatchlistEntry

// FileStore keeps all watchlists in one JSON document on disk. Every write
// goes through a temp file and rename, so a crash mid-write never leaves a
// half-written document behind.
type FileStore struct {
	path      string
	migrateTo string
	mu        sync.Mutex
}

func NewFileStore(path, migrateTo string) *FileStore {
	return &FileStore{
		path:      path,
		migrateTo: migrateTo,
	}
}

func (s *FileStore) List(ctx context.Context, subscriberID string) ([]entity.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, subscriberID)
	if err != nil {
		return nil, err
	}

	return doc[subscriberID], nil
}

func (s *FileStore) Subscribers(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, "")
	if err != nil {
		return nil, err
	}

	subs := make([]string, 0, len(doc))
	for id := range doc {
		if id == legacyDocumentKey {
			continue
		}

		subs = append(subs, id)
	}

	sort.Strings(subs)

	return subs, nil
}

func (s *FileStore) Append(ctx context.Context, subscriberID string, entry entity.WatchlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, subscriberID)
	if err != nil {
		return err
	}

	doc[subscriberID] = append(doc[subscriberID], entry)

	return s.save(doc)
}

func (s *FileStore) Remove(ctx context.Context, subscriberID string, appID int64) (entity.WatchlistEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx, subscriberID)
	if err != nil {
		return entity.WatchlistEntry{}, false, err
	}

	entries := doc[subscriberID]
	for i, entry := range entries {
		if entry.AppID != appID {
			continue
		}

		entries = append(entries[:i:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(doc, subscriberID)
		} else {
			doc[subscriberID] = entries
		}

		if err = s.save(doc); err != nil {
			return entity.WatchlistEntry{}, false, err
		}

		return entry, true, nil
	}

	return entity.WatchlistEntry{}, false, nil
}

// load reads the document and migrates the legacy single-user layout in place.
// fallbackOwner adopts legacy entries when no migration target is configured;
// with neither available the legacy block is kept untouched for a later call.
func (s *FileStore) load(ctx context.Context, fallbackOwner string) (document, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return document{}, nil
	}

	if err != nil {
		return nil, domain.WrapError(err, errcodes.WatchlistStoreDown, "read watchlist document")
	}

	doc := document{}
	if len(b) > 0 {
		if err = json.Unmarshal(b, &doc); err != nil {
			return nil, domain.WrapError(err, errcodes.WatchlistStoreDown, "corrupted watchlist document")
		}
	}

	if err = s.migrateLegacy(ctx, doc, fallbackOwner); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *FileStore) migrateLegacy(ctx context.Context, doc document, fallbackOwner string) error {
	legacy, ok := doc[legacyDocumentKey]
	if !ok {
		return nil
	}

	target := s.migrateTo
	if target == "" {
		target = fallbackOwner
	}

	if target == "" {
		return nil
	}

	tracked := make(map[int64]struct{}, len(doc[target]))
	for _, entry := range doc[target] {
		tracked[entry.AppID] = struct{}{}
	}

	adopted := 0

	for _, entry := range legacy {
		if _, exists := tracked[entry.AppID]; exists {
			continue
		}

		doc[target] = append(doc[target], entry)
		tracked[entry.AppID] = struct{}{}
		adopted++
	}

	delete(doc, legacyDocumentKey)

	if err := s.save(doc); err != nil {
		return err
	}

	logger(ctx).Info(
		"legacy watchlist migrated",
		slog.String(logx.FieldSubscriberID, target),
		slog.Int("entries", adopted),
	)

	return nil
}

func (s *FileStore) save(doc document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "encode watchlist document")
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".watchlist-*")
	if err != nil {
		return domain.WrapError(err, errcodes.WatchlistStoreDown, "create temp watchlist document")
	}

	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return domain.WrapError(err, errcodes.WatchlistStoreDown, "write watchlist document")
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return domain.WrapError(err, errcodes.WatchlistStoreDown, "close watchlist document")
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())

		return domain.WrapError(err, errcodes.WatchlistStoreDown, "replace watchlist document")
	}

	return nil
}
