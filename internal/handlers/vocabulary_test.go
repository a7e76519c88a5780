package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/echobridge/listening-trainer-api/internal/vocabulary"
)

func TestVocabularyFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{Vocabulary: vocabulary.NewService()}

	tests := []struct {
		name         string
		query        string
		wantCategory string
		wantCount    int // -1 = any non-zero count
	}{
		{
			name:         "by category",
			query:        "category=environment",
			wantCategory: "environment",
			wantCount:    -1,
		},
		{
			name:         "category with limit",
			query:        "category=technology&limit=3",
			wantCategory: "technology",
			wantCount:    3,
		},
		{
			name:      "no filters lists the bank",
			query:     "",
			wantCount: -1,
		},
		{
			name:      "bogus category matches nothing",
			query:     "category=astrology",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/api/v1/vocabulary/filter?"+tt.query, nil)

			h.VocabularyFilter(c)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			var resp struct {
				Count int                `json:"count"`
				Words []vocabulary.Entry `json:"words"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Count != len(resp.Words) {
				t.Errorf("count = %d but %d words returned", resp.Count, len(resp.Words))
			}
			if tt.wantCount >= 0 && resp.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", resp.Count, tt.wantCount)
			}
			if tt.wantCount == -1 && resp.Count == 0 {
				t.Error("expected a non-empty result")
			}
			for _, e := range resp.Words {
				if tt.wantCategory != "" && e.Category != tt.wantCategory {
					t.Errorf("entry %q has category %q, want %q", e.Word, e.Category, tt.wantCategory)
				}
			}
		})
	}
}
