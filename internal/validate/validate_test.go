// Unit tests for the create/update payload validators.
package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantText string
		rejected bool
		field    string
	}{
		{
			name:     "valid payload",
			raw:      `{"text":"buy milk"}`,
			wantText: "buy milk",
		},
		{
			name:     "empty text names the field",
			raw:      `{"text":""}`,
			rejected: true,
			field:    "text",
		},
		{
			name:     "missing text",
			raw:      `{}`,
			rejected: true,
		},
		{
			name:     "wrong type for text",
			raw:      `{"text":42}`,
			rejected: true,
			field:    "text",
		},
		{
			name:     "unknown property",
			raw:      `{"text":"ok","bogus":true}`,
			rejected: true,
		},
		{
			name:     "malformed JSON",
			raw:      `{"text":`,
			rejected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, fe := Create([]byte(tt.raw))
			if tt.rejected {
				require.NotNil(t, fe)
				assert.NotEmpty(t, fe.Fields)
				if tt.field != "" {
					assert.Contains(t, fe.Fields, tt.field)
				}
				return
			}
			require.Nil(t, fe)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		rejected  bool
		field     string
		wantText  *string
		wantCompl *bool
	}{
		{
			name:     "text only",
			raw:      `{"text":"edited"}`,
			wantText: strPtr("edited"),
		},
		{
			name:      "completed only",
			raw:       `{"completed":true}`,
			wantCompl: boolPtr(true),
		},
		{
			name:      "both fields",
			raw:       `{"text":"edited","completed":false}`,
			wantText:  strPtr("edited"),
			wantCompl: boolPtr(false),
		},
		{
			name:     "empty payload is rejected",
			raw:      `{}`,
			rejected: true,
		},
		{
			name:     "empty text is rejected",
			raw:      `{"text":""}`,
			rejected: true,
			field:    "text",
		},
		{
			name:     "wrong type for completed",
			raw:      `{"completed":"yes"}`,
			rejected: true,
			field:    "completed",
		},
		{
			name:     "unknown property",
			raw:      `{"done":true}`,
			rejected: true,
		},
		{
			name:     "malformed JSON",
			raw:      `[`,
			rejected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, fe := Update([]byte(tt.raw))
			if tt.rejected {
				require.NotNil(t, fe)
				assert.NotEmpty(t, fe.Fields)
				if tt.field != "" {
					assert.Contains(t, fe.Fields, tt.field)
				}
				return
			}
			require.Nil(t, fe)
			assert.Equal(t, tt.wantText, patch.Text)
			assert.Equal(t, tt.wantCompl, patch.Completed)
		})
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
