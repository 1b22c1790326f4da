package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Validate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name: "valid_task",
			task: Task{Keyword: "laptops", Email: "a@b.com"},
		},
		{
			name: "keyword_at_max_length",
			task: Task{Keyword: strings.Repeat("k", 100), Email: "user@example.com"},
		},
		{
			name:    "keyword_too_long",
			task:    Task{Keyword: strings.Repeat("k", 101), Email: "user@example.com"},
			wantErr: true,
		},
		{
			name:    "keyword_empty",
			task:    Task{Keyword: "", Email: "user@example.com"},
			wantErr: true,
		},
		{
			name:    "email_missing",
			task:    Task{Keyword: "laptops"},
			wantErr: true,
		},
		{
			name:    "email_not_an_address",
			task:    Task{Keyword: "laptops", Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "email_missing_domain",
			task:    Task{Keyword: "laptops", Email: "user@"},
			wantErr: true,
		},
		{
			name: "unicode_keyword",
			task: Task{Keyword: "笔记本电脑", Email: "user@example.com"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTask_JSONEncoding(t *testing.T) {
	task := Task{Keyword: "laptops", Email: "a@b.com"}

	body, err := json.Marshal(task)
	require.NoError(t, err)

	// The queue wire contract fixes the field names.
	assert.JSONEq(t, `{"keyword":"laptops","email":"a@b.com"}`, string(body))
}
