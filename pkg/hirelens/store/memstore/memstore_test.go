package memstore

import (
	"context"
	"testing"

	"github.com/hirelens/hirelens/pkg/hirelens/pipeline"
	"github.com/hirelens/hirelens/pkg/hirelens/store"
)

func TestPostingRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	p := store.Posting{URL: "https://jobs.example.com/1", Title: "Go Developer", Company: "Acme"}
	if err := s.UpsertPosting(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.GetPosting(ctx, p.URL)
	if err != nil || !ok {
		t.Fatalf("GetPosting ok=%v err=%v", ok, err)
	}
	if got.Title != "Go Developer" || got.Company != "Acme" {
		t.Errorf("got %+v", got)
	}

	if _, ok, _ := s.GetPosting(ctx, "https://jobs.example.com/none"); ok {
		t.Error("missing posting reported found")
	}
}

func TestListUnprocessedOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	urls := []string{"u1", "u2", "u3"}
	for _, u := range urls {
		if err := s.UpsertPosting(ctx, store.Posting{URL: u}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListUnprocessed(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].URL != "u1" || got[2].URL != "u3" {
		t.Errorf("unprocessed = %+v, want insertion order", got)
	}

	limited, _ := s.ListUnprocessed(ctx, 2)
	if len(limited) != 2 {
		t.Errorf("limit ignored: %+v", limited)
	}

	if err := s.MarkProcessed(ctx, "u2"); err != nil {
		t.Fatal(err)
	}
	got, _ = s.ListUnprocessed(ctx, 0)
	if len(got) != 2 || got[0].URL != "u1" || got[1].URL != "u3" {
		t.Errorf("after mark: %+v", got)
	}
}

func TestUpsertResultMarksProcessed(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	url := "https://jobs.example.com/2"
	if err := s.UpsertPosting(ctx, store.Posting{URL: url}); err != nil {
		t.Fatal(err)
	}

	res := pipeline.Result{
		ID:          "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Metadata:    pipeline.Metadata{URL: url},
		CleanedText: "senior go developer",
	}
	if err := s.UpsertResult(ctx, res); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.GetResultByURL(ctx, url)
	if err != nil || !ok {
		t.Fatalf("GetResultByURL ok=%v err=%v", ok, err)
	}
	if got.ID != res.ID || got.CleanedText != res.CleanedText {
		t.Errorf("got %+v", got)
	}

	p, _, _ := s.GetPosting(ctx, url)
	if !p.Processed {
		t.Error("posting not flagged processed after result upsert")
	}

	if _, ok, _ := s.GetResultByURL(ctx, "other"); ok {
		t.Error("missing result reported found")
	}
}
