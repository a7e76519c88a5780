package handlers

import "testing"

func TestComputeAccuracy(t *testing.T) {
	keywords := []string{"climate", "emission", "renewable", "energy"}

	tests := []struct {
		name     string
		keywords []string
		clicked  []string
		want     float64
	}{
		{
			name:     "all keywords found",
			keywords: keywords,
			clicked:  []string{"climate", "emission", "renewable", "energy"},
			want:     100,
		},
		{
			name:     "half found",
			keywords: keywords,
			clicked:  []string{"climate", "emission"},
			want:     50,
		},
		{
			name:     "wrong clicks don't count",
			keywords: keywords,
			clicked:  []string{"climate", "banana", "orange"},
			want:     25,
		},
		{
			name:     "duplicate clicks count once",
			keywords: keywords,
			clicked:  []string{"climate", "climate", "climate"},
			want:     25,
		},
		{
			name:     "case insensitive",
			keywords: keywords,
			clicked:  []string{"CLIMATE", "Emission"},
			want:     50,
		},
		{
			name:     "nothing clicked",
			keywords: keywords,
			clicked:  nil,
			want:     0,
		},
		{
			name:     "no keywords scores zero",
			keywords: nil,
			clicked:  []string{"climate"},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeAccuracy(tt.keywords, tt.clicked); got != tt.want {
				t.Errorf("computeAccuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}
