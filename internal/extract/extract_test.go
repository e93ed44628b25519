package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jroosing/mailreply/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	answer string
	err    error
	prompt string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.answer, s.err
}

func TestExtract_Success(t *testing.T) {
	p := &stubProvider{answer: `{"reply_type":"delegation","delegate_to":"ops@example.com","proposed_time":"2024-05-01T10:00:00Z"}`}
	e := extract.New(p, nil)

	f, err := e.Extract(context.Background(), "Please talk to ops@example.com")
	require.NoError(t, err)

	assert.Contains(t, p.prompt, "Please talk to ops@example.com")
	assert.Equal(t, "delegation", *f.ReplyType)
	assert.Equal(t, "ops@example.com", *f.DelegateTo)
	assert.Equal(t, "2024-05-01T10:00:00Z", *f.ProposedTime)
}

func TestExtract_ProviderFailureYieldsNilFields(t *testing.T) {
	e := extract.New(&stubProvider{err: errors.New("boom")}, nil)

	f, err := e.Extract(context.Background(), "text")
	assert.Error(t, err)
	assert.Equal(t, extract.Fields{}, f)
}

func TestExtract_GarbageAnswerYieldsNilFields(t *testing.T) {
	e := extract.New(&stubProvider{answer: "no idea"}, nil)

	f, err := e.Extract(context.Background(), "text")
	assert.Error(t, err)
	assert.Equal(t, extract.Fields{}, f)
}

func TestExtract_NoProvider(t *testing.T) {
	e := extract.New(nil, nil)

	_, err := e.Extract(context.Background(), "text")
	assert.ErrorIs(t, err, extract.ErrNoProvider)
}
