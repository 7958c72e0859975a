package wardrobe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/provider"
)

type fakeItemRepo struct {
	created []domain.WardrobeItem
	counts  map[domain.Category]int
	err     error
}

func (f *fakeItemRepo) Create(_ context.Context, item domain.WardrobeItem) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, item)
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, _, _ uuid.UUID) (domain.WardrobeItem, error) {
	return domain.WardrobeItem{}, domain.ErrNotFound
}

func (f *fakeItemRepo) List(_ context.Context, _ uuid.UUID, _ domain.ItemFilter) ([]domain.WardrobeItem, error) {
	return f.created, nil
}

func (f *fakeItemRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return f.err
}

func (f *fakeItemRepo) CountByCategory(_ context.Context, _ uuid.UUID) (map[domain.Category]int, error) {
	return f.counts, f.err
}

type fakeClassifier struct {
	result *provider.ClassifyResult
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (*provider.ClassifyResult, error) {
	f.calls++
	return f.result, f.err
}

func newService(repo *fakeItemRepo, cls *fakeClassifier) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, cls)
}

func strPtr(s string) *string { return &s }

func catPtr(c domain.Category) *domain.Category { return &c }

func TestAdd_ExplicitNameAndCategory(t *testing.T) {
	t.Parallel()

	repo := &fakeItemRepo{}
	cls := &fakeClassifier{}
	svc := newService(repo, cls)

	item, err := svc.Add(context.Background(), AddInput{
		ProfileID: uuid.New(),
		Name:      "  Blue Jeans  ",
		Category:  domain.CategoryBottom,
	})
	require.NoError(t, err)

	assert.Equal(t, "Blue Jeans", item.Name)
	assert.Equal(t, domain.CategoryBottom, item.Category)
	assert.Zero(t, cls.calls)
	require.Len(t, repo.created, 1)
}

func TestAdd_AutoTagFromImage(t *testing.T) {
	t.Parallel()

	repo := &fakeItemRepo{}
	cls := &fakeClassifier{result: &provider.ClassifyResult{
		Name:     strPtr("red silk saree"),
		Category: catPtr(domain.CategorySaree),
	}}
	svc := newService(repo, cls)

	item, err := svc.Add(context.Background(), AddInput{
		ProfileID: uuid.New(),
		ImageRef:  strPtr("uploads/img1.jpg"),
	})
	require.NoError(t, err)

	assert.Equal(t, "red silk saree", item.Name)
	assert.Equal(t, domain.CategorySaree, item.Category)
	assert.Equal(t, 1, cls.calls)
}

func TestAdd_ClassifierFailureFallsBack(t *testing.T) {
	t.Parallel()

	repo := &fakeItemRepo{}
	cls := &fakeClassifier{err: errors.New("service down")}
	svc := newService(repo, cls)

	item, err := svc.Add(context.Background(), AddInput{
		ProfileID: uuid.New(),
		ImageRef:  strPtr("uploads/img1.jpg"),
	})
	require.NoError(t, err)

	assert.True(t, len(item.Name) > 0)
	assert.Contains(t, item.Name, "item_")
	assert.Equal(t, domain.CategoryUncategorized, item.Category)
}

func TestAdd_UserValuesWinOverClassifier(t *testing.T) {
	t.Parallel()

	repo := &fakeItemRepo{}
	cls := &fakeClassifier{result: &provider.ClassifyResult{
		Name:     strPtr("something else"),
		Category: catPtr(domain.CategoryTop),
	}}
	svc := newService(repo, cls)

	item, err := svc.Add(context.Background(), AddInput{
		ProfileID: uuid.New(),
		Name:      "Blue Jeans",
		ImageRef:  strPtr("uploads/img1.jpg"),
	})
	require.NoError(t, err)

	// User-provided name stays; only the blank category is filled.
	assert.Equal(t, "Blue Jeans", item.Name)
	assert.Equal(t, domain.CategoryTop, item.Category)
}

func TestAdd_Validation(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeItemRepo{}, &fakeClassifier{})

	_, err := svc.Add(context.Background(), AddInput{ProfileID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Add(context.Background(), AddInput{
		ProfileID: uuid.New(),
		Name:      "thing",
		Category:  domain.Category("spacesuit"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		counts      map[domain.Category]int
		wantTotal   int
		wantMissing []domain.Category
	}{
		{
			name: "complete wardrobe",
			counts: map[domain.Category]int{
				domain.CategoryTop:    3,
				domain.CategoryBottom: 2,
				domain.CategoryShoes:  1,
			},
			wantTotal:   6,
			wantMissing: []domain.Category{},
		},
		{
			name:        "missing shoes and bottoms",
			counts:      map[domain.Category]int{domain.CategoryTop: 2},
			wantTotal:   2,
			wantMissing: []domain.Category{domain.CategoryBottom, domain.CategoryShoes},
		},
		{
			name: "saree covers top and bottom",
			counts: map[domain.Category]int{
				domain.CategorySaree: 2,
				domain.CategoryShoes: 1,
			},
			wantTotal:   3,
			wantMissing: []domain.Category{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeItemRepo{counts: tt.counts}, &fakeClassifier{})

			analysis, err := svc.Analyze(context.Background(), uuid.New())
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, analysis.Total)
			assert.Equal(t, tt.wantMissing, analysis.Missing)
		})
	}
}
