package vision

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/closetmate/closetmate/internal/config"
	"github.com/closetmate/closetmate/internal/domain"
)

func newTestClassifier(srv *httptest.Server) *Classifier {
	return NewClassifier(config.VisionConfig{
		URL:     srv.URL,
		Timeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"blue denim jacket","category":"outerwear"}`))
	}))
	defer srv.Close()

	result, err := newTestClassifier(srv).Classify(context.Background(), "uploads/img123.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name == nil || *result.Name != "blue denim jacket" {
		t.Errorf("Name = %v, want blue denim jacket", result.Name)
	}
	if result.Category == nil || *result.Category != domain.CategoryOuterwear {
		t.Errorf("Category = %v, want outerwear", result.Category)
	}
}

func TestClassifier_Classify_UnknownCategoryDropped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"thing","category":"spacesuit"}`))
	}))
	defer srv.Close()

	result, err := newTestClassifier(srv).Classify(context.Background(), "uploads/img123.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != nil {
		t.Errorf("Category = %v, want nil for unknown value", *result.Category)
	}
	if result.Name == nil || *result.Name != "thing" {
		t.Error("Name should survive an unknown category")
	}
}

func TestClassifier_Classify_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestClassifier(srv).Classify(context.Background(), "x.jpg"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestStub_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		imageRef string
		want     *domain.Category
	}{
		{"uploads/red_silk_saree.jpg", ptr(domain.CategorySaree)},
		{"uploads/blue-jeans-01.png", ptr(domain.CategoryBottom)},
		{"uploads/white_shirt.jpg", ptr(domain.CategoryTop)},
		{"uploads/maxi_dress.jpg", ptr(domain.CategoryDress)},
		{"uploads/IMG_20240801.jpg", nil},
	}

	stub := NewStub()
	for _, tt := range tests {
		result, err := stub.Classify(context.Background(), tt.imageRef)
		if err != nil {
			t.Fatalf("Classify(%q): %v", tt.imageRef, err)
		}
		switch {
		case tt.want == nil && result.Category != nil:
			t.Errorf("Classify(%q) = %v, want no category", tt.imageRef, *result.Category)
		case tt.want != nil && (result.Category == nil || *result.Category != *tt.want):
			t.Errorf("Classify(%q) = %v, want %v", tt.imageRef, result.Category, *tt.want)
		}
	}
}

func ptr(c domain.Category) *domain.Category { return &c }
