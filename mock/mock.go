// Package mock provides function-field mock implementations of fedtext
// interfaces for tests.
package mock

import (
	"context"

	"github.com/mwalczak/fedtext"
)

var _ fedtext.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of fedtext.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ fedtext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of fedtext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*fedtext.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*fedtext.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ fedtext.LinkScanner = (*LinkScanner)(nil)

// LinkScanner is a mock implementation of fedtext.LinkScanner.
type LinkScanner struct {
	ScanLinksFn func(html string, baseURL string, year int) ([]fedtext.LinkRecord, error)
}

func (s *LinkScanner) ScanLinks(html string, baseURL string, year int) ([]fedtext.LinkRecord, error) {
	return s.ScanLinksFn(html, baseURL, year)
}

var _ fedtext.FeedSource = (*FeedSource)(nil)

// FeedSource is a mock implementation of fedtext.FeedSource.
type FeedSource struct {
	EntriesFn func(ctx context.Context, feedURL string) ([]fedtext.FeedEntry, error)
}

func (s *FeedSource) Entries(ctx context.Context, feedURL string) ([]fedtext.FeedEntry, error) {
	return s.EntriesFn(ctx, feedURL)
}

var _ fedtext.ManifestStore = (*ManifestStore)(nil)

// ManifestStore is a mock implementation of fedtext.ManifestStore.
type ManifestStore struct {
	WriteFn func(ctx context.Context, records []fedtext.LinkRecord) error
	ReadFn  func(ctx context.Context) ([]fedtext.LinkRecord, error)
}

func (s *ManifestStore) Write(ctx context.Context, records []fedtext.LinkRecord) error {
	return s.WriteFn(ctx, records)
}

func (s *ManifestStore) Read(ctx context.Context) ([]fedtext.LinkRecord, error) {
	return s.ReadFn(ctx)
}

var _ fedtext.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of fedtext.ArtifactStore.
type ArtifactStore struct {
	ExistsFn func(name string) (bool, error)
	WriteFn  func(ctx context.Context, name string, text string) error
}

func (s *ArtifactStore) Exists(name string) (bool, error) {
	return s.ExistsFn(name)
}

func (s *ArtifactStore) Write(ctx context.Context, name string, text string) error {
	return s.WriteFn(ctx, name, text)
}

var _ fedtext.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of fedtext.ReportStore.
type ReportStore struct {
	CreateRecordFn func(ctx context.Context, rec *fedtext.ReportRecord) error
}

func (s *ReportStore) CreateRecord(ctx context.Context, rec *fedtext.ReportRecord) error {
	return s.CreateRecordFn(ctx, rec)
}
