// Package extract turns email reply text into structured scheduling fields by
// asking an upstream language model and normalizing its answer.
//
// The model is an external collaborator: this package only builds the prompt,
// transports it and cleans up the result. When the model fails or answers with
// something unusable, the result is all-nil rather than an error for the caller
// to surface; the reply is still stored.
package extract

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jroosing/mailreply/internal/helpers"
	"github.com/jroosing/mailreply/internal/logging"
)

// ErrNoProvider is returned by an Extractor built without a Provider.
var ErrNoProvider = errors.New("no extraction provider configured")

// Extractor runs one prompt per reply against a Provider.
type Extractor struct {
	provider Provider
	logger   *slog.Logger
}

// New creates an Extractor.
func New(provider Provider, logger *slog.Logger) *Extractor {
	return &Extractor{provider: provider, logger: logging.OrDiscard(logger)}
}

// Extract always returns usable Fields. A non-nil error reports that the
// result degraded to all-nil and why.
func (e *Extractor) Extract(ctx context.Context, emailText string) (Fields, error) {
	if e.provider == nil {
		return Fields{}, ErrNoProvider
	}

	answer, err := e.provider.Complete(ctx, BuildPrompt(emailText))
	if err != nil {
		e.logger.Warn("provider call failed", "provider", e.provider.Name(), "err", err)
		return Fields{}, err
	}

	fields, err := DecodeAnswer(answer)
	if err != nil {
		e.logger.Warn("unusable provider answer", "provider", e.provider.Name(), "err", err)
		return Fields{}, err
	}

	e.logger.Debug("reply extracted", "provider", e.provider.Name(), "reply_type", helpers.Deref(fields.ReplyType))
	return fields, nil
}
