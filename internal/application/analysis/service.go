package analysis

import (
	"context"
	"fmt"

	domain "github.com/bryanwahyu/image-analyzer/internal/domain/analysis"
)

// Service runs the analysis pipeline for one upload:
// validate -> encode -> complete -> normalize.
type Service struct {
	completer domain.Completer
}

func NewService(completer domain.Completer) *Service {
	return &Service{completer: completer}
}

// Analyze never partially mutates anything; any stage's failure
// short-circuits with an error for the boundary to map.
func (s *Service) Analyze(ctx context.Context, upload domain.Upload) (domain.Result, error) {
	img, err := domain.Encode(upload)
	if err != nil {
		return domain.Result{}, err
	}

	completion, err := s.completer.Complete(ctx, img)
	if err != nil {
		return domain.Result{}, fmt.Errorf("completion call failed: %w", err)
	}

	return domain.Normalize(completion), nil
}
