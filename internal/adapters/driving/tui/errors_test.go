package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingSearchService.Error(), ErrMissingCorpusService.Error())
	assert.Contains(t, ErrMissingSearchService.Error(), "search service")
	assert.Contains(t, ErrMissingCorpusService.Error(), "corpus service")
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{name: "nil", ports: nil, want: ErrMissingSearchService},
		{name: "missing search", ports: &Ports{Corpus: &mockCorpusService{}}, want: ErrMissingSearchService},
		{name: "missing corpus", ports: &Ports{Search: &mockSearchService{}}, want: ErrMissingCorpusService},
		{name: "history optional", ports: &Ports{Search: &mockSearchService{}, Corpus: &mockCorpusService{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
