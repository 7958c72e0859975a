package stylist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
	"github.com/closetmate/closetmate/internal/suggestion"
)

// Resolve runs one style-advice resolution and archives the outcome.
//
// Failure modes, in order of detection:
//   - blank occasion: ErrValidation, no collaborator touched
//   - empty wardrobe: ErrEmptyWardrobe, no external call, nothing archived
//   - weather lookup failure: non-fatal, resolution continues without weather
//   - generator failure: ErrAdviceUnavailable, nothing archived
//
// On success exactly one entry is appended to the history ledger.
func (s *Service) Resolve(ctx context.Context, in StyleInput) (domain.HistoryEntry, error) {
	in, err := s.normalize(in)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	catalogue, err := s.catalogue.List(ctx, in.ProfileID, domain.ItemFilter{})
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("load catalogue: %w", err)
	}
	if len(catalogue) == 0 {
		return domain.HistoryEntry{}, fmt.Errorf("profile %s: %w", in.ProfileID, domain.ErrEmptyWardrobe)
	}

	weather, err := s.weather.Fetch(ctx, in.City)
	if err != nil {
		s.log.WarnContext(ctx, "weather lookup failed, continuing without",
			slog.String("city", in.City),
			slog.String("error", err.Error()),
		)
		weather = nil
	}

	advice, err := s.advisor.Generate(ctx, in.Occasion, catalogue, weather)
	if err != nil {
		s.log.ErrorContext(ctx, "advice generation failed",
			slog.String("occasion", in.Occasion),
			slog.String("error", err.Error()),
		)
		return domain.HistoryEntry{}, fmt.Errorf("%w: %v", domain.ErrAdviceUnavailable, err)
	}

	items := suggestion.Match(advice.Narrative, catalogue)
	if len(items) == 0 {
		// Narrative carried no recognizable item cues; fall back to the
		// generator's own structured selection.
		items = advice.Items
	}

	entry := domain.HistoryEntry{
		ID:        uuid.New(),
		ProfileID: in.ProfileID,
		Result: domain.Resolution{
			Occasion:  in.Occasion,
			City:      in.City,
			Weather:   weather,
			Narrative: advice.Narrative,
			Items:     items,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.history.Append(ctx, entry); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("archive resolution: %w", err)
	}

	s.log.InfoContext(ctx, "resolution archived",
		slog.String("profile_id", in.ProfileID.String()),
		slog.String("occasion", in.Occasion),
		slog.Int("matched_items", len(items)),
		slog.Bool("weather_available", weather != nil),
	)

	return entry, nil
}
