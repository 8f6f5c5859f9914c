package service

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/fapah/docmanager/internal/document"
	"github.com/fapah/docmanager/internal/document/repository"
	"github.com/fapah/docmanager/pkg/logger"
	"github.com/fapah/docmanager/pkg/metrics"
)

// Service defines the document store operations used by the CLI and by
// library callers.
type Service interface {
	Save(d *document.Document) (*document.Document, error)
	FindByID(id string) (*document.Document, bool, error)
	Search(req *document.SearchRequest) ([]*document.Document, error)
	Delete(id string) error
	Count() int
}

// Option customises a DocumentStore.
type Option func(*DocumentStore)

// WithIDGenerator replaces the default uuid generator.
func WithIDGenerator(gen document.IDGenerator) Option {
	return func(s *DocumentStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithClock replaces time.Now for stamping Created.
func WithClock(now func() time.Time) Option {
	return func(s *DocumentStore) {
		if now != nil {
			s.now = now
		}
	}
}

// DocumentStore is an in-memory document repository. It is safe for
// concurrent use.
type DocumentStore struct {
	repo  *repository.MemoryRepo
	newID document.IDGenerator
	now   func() time.Time
}

var _ Service = (*DocumentStore)(nil)

// NewMemoryService returns a DocumentStore backed by a fresh in-memory repository.
func NewMemoryService(opts ...Option) *DocumentStore {
	s := &DocumentStore{
		repo:  repository.NewMemoryRepo(),
		newID: document.NewUUID,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Save upserts d. A document without an id gets a generated id and the current
// time as Created. Re-saving an existing id keeps the originally stored Created.
// The returned document is a copy of the stored snapshot.
func (s *DocumentStore) Save(d *document.Document) (*document.Document, error) {
	if err := document.ValidateDocument(d); err != nil {
		return nil, s.reject("save", err)
	}

	snap := &document.Document{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
		Author:  d.Author,
		Created: d.Created,
	}
	if snap.ID == "" {
		snap.ID = s.newID()
		snap.Created = s.now()
	} else if snap.Created.IsZero() {
		// overwritten by the repository if the id is already stored
		snap.Created = s.now()
	}

	stored, updated := s.repo.Upsert(snap)
	op := "create"
	if updated {
		op = "update"
	}
	metrics.DocumentsSaved.WithLabelValues(op).Inc()
	logger.With("documentId", stored.ID, "op", op).Info("document saved")
	return stored, nil
}

// FindByID returns the document stored at id. A missing document is reported
// with ok == false, not as an error.
func (s *DocumentStore) FindByID(id string) (*document.Document, bool, error) {
	if err := document.ValidateID(id); err != nil {
		return nil, false, s.reject("find", err)
	}
	d, err := s.repo.Get(id)
	if errors.Is(err, document.ErrNotFound) {
		metrics.Lookups.WithLabelValues("miss").Inc()
		logger.With("documentId", id).Debug("document not found")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	metrics.Lookups.WithLabelValues("hit").Inc()
	return d, true, nil
}

// Search scans every stored document and returns those matching all criteria
// in req, ordered by Created and then by ID.
func (s *DocumentStore) Search(req *document.SearchRequest) ([]*document.Document, error) {
	if err := document.ValidateSearchRequest(req); err != nil {
		return nil, s.reject("search", err)
	}
	log := logger.With(searchFields(req)...)
	log.Info("performing search")

	out := make([]*document.Document, 0)
	for _, d := range s.repo.List() {
		if document.Matches(req, d) {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b *document.Document) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	metrics.Searches.Inc()
	metrics.SearchResults.Observe(float64(len(out)))
	log.Infof("search completed, found %d documents", len(out))
	return out, nil
}

// searchFields lists the clauses present in req as logger key/value pairs.
// Absent clauses are left out so they cannot be mistaken for empty ones.
func searchFields(req *document.SearchRequest) []interface{} {
	fields := []interface{}{}
	if req.TitlePrefixes != nil {
		fields = append(fields, "titlePrefixes", req.TitlePrefixes)
	}
	if req.ContainsContents != nil {
		fields = append(fields, "containsContents", req.ContainsContents)
	}
	if req.AuthorIDs != nil {
		fields = append(fields, "authorIds", req.AuthorIDs)
	}
	if req.CreatedFrom != nil {
		fields = append(fields, "createdFrom", *req.CreatedFrom)
	}
	if req.CreatedTo != nil {
		fields = append(fields, "createdTo", *req.CreatedTo)
	}
	return fields
}

// Delete removes the document stored at id.
func (s *DocumentStore) Delete(id string) error {
	if err := document.ValidateID(id); err != nil {
		return s.reject("delete", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	logger.With("documentId", id).Info("document deleted")
	return nil
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count() int {
	return s.repo.Len()
}

func (s *DocumentStore) reject(op string, err error) error {
	metrics.InvalidArguments.WithLabelValues(op).Inc()
	logger.With("operation", op).Errorf("rejected call: %v", err)
	return err
}
