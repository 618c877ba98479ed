// Package usecase ties the validator, the store and the base62 encoder
// together to implement the shorten and resolve workflows.
package usecase

import (
	"context"
	"fmt"

	"urlshortener/internal/base62"
	"urlshortener/internal/entity"
	"urlshortener/internal/validation"
)

type urlRepository interface {
	Create(ctx context.Context, originalURL string) (*entity.URL, error)
	AttachShortCode(ctx context.Context, id int64, shortCode string) error
	GetByShortCode(ctx context.Context, shortCode string) (*entity.URL, error)
}

type URLUseCase struct {
	urlRepo   urlRepository
	validator *validation.Validator
}

func New(urlRepo urlRepository, validator *validation.Validator) *URLUseCase {
	return &URLUseCase{
		urlRepo:   urlRepo,
		validator: validator,
	}
}

// ShortenURL validates rawURL, persists it and returns the record with its
// short code attached.
//
// Creation is deliberately two-phase: the code is a deterministic function of
// the id, and the id does not exist until the row is inserted, so the record
// is created first and the code attached in a second write. That second write
// is the price for codes that can never collide, since base62 encoding is
// injective in the id.
func (uc *URLUseCase) ShortenURL(ctx context.Context, rawURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	originalURL, err := uc.validator.ValidateLongURL(rawURL)
	if err != nil {
		return nil, err
	}

	url, err := uc.urlRepo.Create(ctx, originalURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
	}

	shortCode := base62.Encode(uint64(url.ID))

	if err := uc.urlRepo.AttachShortCode(ctx, url.ID, shortCode); err != nil {
		return nil, fmt.Errorf("%s: failed to attach short code: %w", op, err)
	}

	url.ShortCode = shortCode

	return url, nil
}

// ResolveShortCode validates rawCode and returns the record it points at.
// A code that passes shape validation but matches no record yields
// entity.ErrURLNotFound.
func (uc *URLUseCase) ResolveShortCode(ctx context.Context, rawCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	shortCode, err := uc.validator.ValidateShortCode(rawCode)
	if err != nil {
		return nil, err
	}

	url, err := uc.urlRepo.GetByShortCode(ctx, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	return url, nil
}
