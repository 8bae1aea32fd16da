package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
	"github.com/lomap-labs/lomap-cli/internal/logger"
)

// Ensure PlaceService implements the interface.
var _ driving.PlaceService = (*PlaceService)(nil)

// PlaceService manages place detail containers and their append-only
// sub-writes.
type PlaceService struct {
	store    driven.ContainerStore
	session  driven.Session
	locators driven.LocatorResolver
	catalog  driven.PlaceCatalog
}

// NewPlaceService creates a new place service.
func NewPlaceService(store driven.ContainerStore, session driven.Session, locators driven.LocatorResolver) *PlaceService {
	return &PlaceService{
		store:    store,
		session:  session,
		locators: locators,
	}
}

// WithCatalog mirrors created and freshly read places into the catalog
// behind the HTTP surface. Mirror failures are logged, never surfaced.
func (s *PlaceService) WithCatalog(catalog driven.PlaceCatalog) *PlaceService {
	s.catalog = catalog
	return s
}

// Get fetches the full place record at placeURL. The container is the
// source of truth and is re-read on every call; nothing is cached.
func (s *PlaceService) Get(ctx context.Context, placeURL string) (*domain.Place, error) {
	container, err := s.store.Load(ctx, placeURL)
	if err != nil {
		return nil, err
	}

	descriptors := container.ByType(domain.RecordPlace)
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: container %s has no place record", domain.ErrSchemaMismatch, placeURL)
	}
	place, err := domain.DecodePlace(descriptors[0])
	if err != nil {
		return nil, err
	}
	place.URL = placeURL

	for _, rec := range container.ByType(domain.RecordComment) {
		comment, err := domain.DecodeComment(rec)
		if err != nil {
			return nil, err
		}
		place.Comments = append(place.Comments, comment)
	}
	for _, rec := range container.ByType(domain.RecordRating) {
		rating, err := domain.DecodeRating(rec)
		if err != nil {
			return nil, err
		}
		place.Ratings = append(place.Ratings, rating)
	}
	for _, rec := range container.ByType(domain.RecordPhoto) {
		photo, err := domain.DecodePhoto(rec)
		if err != nil {
			return nil, err
		}
		place.Photos = append(place.Photos, photo)
	}
	s.mirror(ctx, place)
	return &place, nil
}

// Create persists a brand-new place container. The locator is minted
// locally, so the caller can link a placemark to it immediately; the
// container write settles on the channel.
func (s *PlaceService) Create(ctx context.Context, place domain.Place) (string, <-chan error, error) {
	rec, err := domain.EncodePlace(place)
	if err != nil {
		return "", nil, err
	}
	locator := s.locators.PlaceLocator(uuid.NewString())
	place.URL = locator
	s.mirror(ctx, place)

	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := s.store.Persist(ctx, locator, rec)
		if err != nil {
			logger.Error("place: creating %s: %v", locator, err)
		}
		done <- err
	}()
	return locator, done, nil
}

// AddComment appends one comment to the place container. Empty comments
// are rejected synchronously, before any persistence is attempted.
func (s *PlaceService) AddComment(ctx context.Context, placeURL, text string) (<-chan error, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty comment", domain.ErrInvalidInput)
	}
	rec, err := domain.EncodeComment(domain.Comment{
		Author:    s.session.WebID(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.persistAsync(ctx, placeURL, rec), nil
}

// AddRating appends one rating to the place container. Out-of-range
// scores are rejected synchronously.
func (s *PlaceService) AddRating(ctx context.Context, placeURL string, score int) (<-chan error, error) {
	rec, err := domain.EncodeRating(domain.Rating{
		Author:    s.session.WebID(),
		Score:     score,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.persistAsync(ctx, placeURL, rec), nil
}

// AddPhotos appends photo references, one record per photo. Photos
// sharing a name within the submission are staged once.
func (s *PlaceService) AddPhotos(ctx context.Context, placeURL string, photos []domain.Photo) (<-chan error, error) {
	if len(photos) == 0 {
		return nil, fmt.Errorf("%w: no photos selected", domain.ErrInvalidInput)
	}

	seen := make(map[string]bool, len(photos))
	var records []domain.Record
	for _, photo := range photos {
		if seen[photo.Name] {
			continue
		}
		seen[photo.Name] = true
		if photo.Author == "" {
			photo.Author = s.session.WebID()
		}
		rec, err := domain.EncodePhoto(photo)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	done := make(chan error, 1)
	go func() {
		defer close(done)
		for _, rec := range records {
			if err := s.store.Persist(ctx, placeURL, rec); err != nil {
				logger.Error("place: persisting photo to %s: %v", placeURL, err)
				done <- err
				return
			}
		}
		done <- nil
	}()
	return done, nil
}

// mirror upserts the place into the catalog when one is configured.
func (s *PlaceService) mirror(ctx context.Context, place domain.Place) {
	if s.catalog == nil {
		return
	}
	if err := s.catalog.Save(ctx, place); err != nil {
		logger.Error("place: mirroring %s to catalog: %v", place.URL, err)
	}
}

// persistAsync spawns the container write and returns its completion
// channel. Failures are logged; the caller has already acknowledged.
func (s *PlaceService) persistAsync(ctx context.Context, locator string, rec domain.Record) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := s.store.Persist(ctx, locator, rec)
		if err != nil {
			logger.Error("place: persisting %s record to %s: %v", rec.Type, locator, err)
		}
		done <- err
	}()
	return done
}
