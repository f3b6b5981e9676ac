package analysis

import "context"

// Completer is the outbound port to the multimodal completion provider.
// Implementations return the model's raw completion text.
type Completer interface {
	Complete(ctx context.Context, img EncodedImage) (string, error)
}
